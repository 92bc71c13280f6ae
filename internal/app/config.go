package app

import (
	"time"

	"github.com/yungbote/learnpath-backend/internal/data/db"
	"github.com/yungbote/learnpath-backend/internal/platform/envutil"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
	"github.com/yungbote/learnpath-backend/internal/platform/neo4jdb"
	"github.com/yungbote/learnpath-backend/internal/services"
)

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration

	ServiceName string
	Environment string
	Version     string

	JWTSecretKey   string
	JWTIssuer      string
	AllowedOrigins []string

	Graph           neo4jdb.Config
	IdentityEnabled bool
	IdentityDB      db.Config

	Pathways services.PathwayConfig
}

func LoadConfig(log *logger.Logger) Config {
	addr := envutil.String("HTTP_ADDR", "")
	if addr == "" {
		addr = ":" + envutil.String("PORT", "8080")
	}

	origins := envutil.List("CORS_ALLOW_ORIGINS", nil)
	if len(origins) == 0 {
		if appURL := envutil.String("APP_URL", ""); appURL != "" {
			origins = []string{appURL}
		}
	}

	cfg := Config{
		Addr:            addr,
		ShutdownTimeout: envutil.Seconds("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		ServiceName:     envutil.String("OTEL_SERVICE_NAME", "learnpath-backend"),
		Environment:     envutil.String("APP_ENV", "development"),
		Version:         envutil.String("APP_VERSION", "dev"),
		JWTSecretKey:    envutil.First("", "JWT_SECRET", "JWT_SECRET_KEY"),
		JWTIssuer:       envutil.String("JWT_ISSUER", ""),
		AllowedOrigins:  origins,
		Graph:           neo4jdb.ConfigFromEnv(),
		IdentityEnabled: envutil.Bool("IDENTITY_DB_ENABLED", true),
		IdentityDB:      db.ConfigFromEnv(),
		Pathways: services.PathwayConfig{
			SimilarLimit:    envutil.PositiveInt("SIMILAR_COURSES_LIMIT", 4),
			DefaultPageSize: envutil.PositiveInt("CATALOG_DEFAULT_PAGE_SIZE", 20),
			MaxPageSize:     envutil.PositiveInt("CATALOG_MAX_PAGE_SIZE", 100),
		},
	}

	if cfg.JWTSecretKey == "" {
		log.Warn("JWT_SECRET not set; every /api request will be rejected")
	}
	if !cfg.IdentityEnabled {
		log.Warn("identity store disabled; recommendations match by learner id only")
	}
	return cfg
}
