package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/yungbote/learnpath-backend/internal/data/db"
	"github.com/yungbote/learnpath-backend/internal/observability"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, name := range []string{"HTTP_ADDR", "PORT", "CORS_ALLOW_ORIGINS", "APP_URL", "JWT_SECRET", "JWT_SECRET_KEY",
		"SIMILAR_COURSES_LIMIT", "CATALOG_DEFAULT_PAGE_SIZE", "CATALOG_MAX_PAGE_SIZE", "IDENTITY_DB_ENABLED"} {
		t.Setenv(name, "")
	}

	cfg := LoadConfig(testLogger(t))
	if cfg.Addr != ":8080" {
		t.Fatalf("Addr: want=%q got=%q", ":8080", cfg.Addr)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Fatalf("AllowedOrigins: want none got=%v", cfg.AllowedOrigins)
	}
	if !cfg.IdentityEnabled {
		t.Fatalf("IdentityEnabled: want=true got=false")
	}
	if cfg.Pathways.SimilarLimit != 4 || cfg.Pathways.DefaultPageSize != 20 || cfg.Pathways.MaxPageSize != 100 {
		t.Fatalf("Pathways: got=%+v", cfg.Pathways)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout: want=10s got=%s", cfg.ShutdownTimeout)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("APP_URL", "https://learn.example.org")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_SECRET_KEY", "legacy-secret")
	t.Setenv("SIMILAR_COURSES_LIMIT", "6")
	t.Setenv("CATALOG_MAX_PAGE_SIZE", "-1")

	cfg := LoadConfig(testLogger(t))
	if cfg.Addr != ":9090" {
		t.Fatalf("Addr: want=%q got=%q", ":9090", cfg.Addr)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://learn.example.org" {
		t.Fatalf("AllowedOrigins: got=%v", cfg.AllowedOrigins)
	}
	if cfg.JWTSecretKey != "legacy-secret" {
		t.Fatalf("JWTSecretKey: want=%q got=%q", "legacy-secret", cfg.JWTSecretKey)
	}
	if cfg.Pathways.SimilarLimit != 6 {
		t.Fatalf("SimilarLimit: want=6 got=%d", cfg.Pathways.SimilarLimit)
	}
	if cfg.Pathways.MaxPageSize != 100 {
		t.Fatalf("MaxPageSize: want=100 got=%d", cfg.Pathways.MaxPageSize)
	}
}

func TestWiringWithoutGraphStore(t *testing.T) {
	log := testLogger(t)
	cfg := Config{
		ServiceName:     "",
		JWTSecretKey:    "wiring-secret",
		IdentityEnabled: true,
		IdentityDB: db.Config{
			Driver:     db.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "identity.db"),
		},
	}

	clients, err := wireClients(context.Background(), log, cfg)
	if err != nil {
		t.Fatalf("wireClients: %v", err)
	}
	defer clients.Close(context.Background())
	if clients.Neo4j != nil {
		t.Fatalf("Neo4j: want nil without NEO4J_URI")
	}
	if clients.Identity == nil {
		t.Fatalf("Identity: want sqlite store")
	}

	reposet := wireRepos(log, clients)
	if reposet.User == nil {
		t.Fatalf("User repo: want wired")
	}
	serviceset := wireServices(log, cfg, clients, reposet)
	server := wireServer(log, cfg, observability.NewMetrics(), wireHandlers(log, clients, serviceset), wireMiddleware(log, serviceset))

	cases := []struct {
		path string
		want int
	}{
		{"/healthcheck", http.StatusOK},
		{"/readyz", http.StatusServiceUnavailable},
		{"/api/recommendations", http.StatusUnauthorized},
		{"/metrics", http.StatusOK},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		server.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != tc.want {
			t.Fatalf("%s: want=%d got=%d body=%s", tc.path, tc.want, w.Code, w.Body.String())
		}
	}
}

func TestWireClientsRejectsUnknownDriver(t *testing.T) {
	cfg := Config{IdentityEnabled: true, IdentityDB: db.Config{Driver: "mysql"}}
	if _, err := wireClients(context.Background(), testLogger(t), cfg); err == nil {
		t.Fatalf("want error for unsupported identity driver")
	}
}

func TestWireReposWithoutIdentity(t *testing.T) {
	if r := wireRepos(testLogger(t), Clients{}); r.User != nil {
		t.Fatalf("User repo: want nil when identity store is disabled")
	}
}
