package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"gorm.io/gorm"

	types "github.com/yungbote/learnpath-backend/internal/domain"
	"github.com/yungbote/learnpath-backend/internal/platform/apierr"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
	"github.com/yungbote/learnpath-backend/internal/platform/neo4jdb"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

type scriptedRunner struct {
	replies []scriptedReply
	params  []map[string]any
}

type scriptedReply struct {
	records []*neo4j.Record
	err     error
}

func (r *scriptedRunner) Run(_ context.Context, _ string, params map[string]any) ([]*neo4j.Record, error) {
	r.params = append(r.params, params)
	i := len(r.params) - 1
	if i >= len(r.replies) {
		return nil, nil
	}
	return r.replies[i].records, r.replies[i].err
}

// fakeSessions tracks that every opened session is closed.
type fakeSessions struct {
	runner  *scriptedRunner
	openErr error
	opened  int
	closed  int
}

func (f *fakeSessions) WithReadSession(ctx context.Context, fn func(neo4jdb.Runner) error) error {
	if f.openErr != nil {
		return f.openErr
	}
	f.opened++
	defer func() { f.closed++ }()
	return fn(f.runner)
}

type stubUsers struct {
	user   *types.User
	legacy *types.User
	err    error
}

func (s stubUsers) Create(context.Context, *gorm.DB, []*types.User) ([]*types.User, error) {
	return nil, errors.New("not implemented")
}
func (s stubUsers) GetByID(context.Context, *gorm.DB, uuid.UUID) (*types.User, error) {
	return s.user, s.err
}
func (s stubUsers) GetByIDs(context.Context, *gorm.DB, []uuid.UUID) ([]*types.User, error) {
	return nil, errors.New("not implemented")
}
func (s stubUsers) GetByLegacyID(context.Context, *gorm.DB, string) (*types.User, error) {
	return s.legacy, s.err
}

func qualificationRecord(title string, rank int64) *neo4j.Record {
	return &neo4j.Record{
		Keys: []string{"q", "rank"},
		Values: []any{
			dbtype.Node{ElementId: "4:q:" + title, Labels: []string{"Qualification"}, Props: map[string]any{"title": title}},
			rank,
		},
	}
}

func TestRecommendationsByAlternateIDWithoutEmail(t *testing.T) {
	log := testLogger(t)
	learner := uuid.New()
	runner := &scriptedRunner{replies: []scriptedReply{
		{},
		{records: []*neo4j.Record{qualificationRecord("Electrician", 1), qualificationRecord("Fitter", 2)}},
	}}
	sessions := &fakeSessions{runner: runner}
	svc := NewPathwayService(log, sessions, NewIdentityResolver(log, stubUsers{}), nil, PathwayConfig{})

	items, err := svc.Recommendations(context.Background(), learner.String())
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(items) != 2 || items[0].Title != "Electrician" || items[1].SkillDemand != "Rank 2" {
		t.Fatalf("items: %+v", items)
	}
	if len(runner.params) != 2 {
		t.Fatalf("queries: want=2 got=%d", len(runner.params))
	}
	if sessions.opened != 1 || sessions.closed != 1 {
		t.Fatalf("sessions: opened=%d closed=%d", sessions.opened, sessions.closed)
	}
}

func TestRecommendationsUsesEmailFromIdentityStore(t *testing.T) {
	log := testLogger(t)
	runner := &scriptedRunner{replies: []scriptedReply{{}, {}, {records: []*neo4j.Record{qualificationRecord("Welder", 1)}}}}
	users := stubUsers{user: &types.User{Email: "learner@example.com"}}
	svc := NewPathwayService(log, &fakeSessions{runner: runner}, NewIdentityResolver(log, users), nil, PathwayConfig{})

	items, err := svc.Recommendations(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(items) != 1 || runner.params[2]["email"] != "learner@example.com" {
		t.Fatalf("email candidate not used: items=%v params=%v", items, runner.params)
	}
}

func TestRecommendationsByLegacyIDUsesStoredKeys(t *testing.T) {
	log := testLogger(t)
	canonical := uuid.New()
	runner := &scriptedRunner{replies: []scriptedReply{{}, {}, {}, {records: []*neo4j.Record{qualificationRecord("Plumber", 1)}}}}
	users := stubUsers{legacy: &types.User{ID: canonical, LegacyID: "1042", Email: "a@example.com"}}
	svc := NewPathwayService(log, &fakeSessions{runner: runner}, NewIdentityResolver(log, users), nil, PathwayConfig{})

	items, err := svc.Recommendations(context.Background(), "1042")
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(items) != 1 || len(runner.params) != 4 {
		t.Fatalf("items=%v queries=%d", items, len(runner.params))
	}
	want := []any{canonical.String(), canonical.String(), "1042"}
	for i, w := range want {
		if runner.params[i]["userId"] != w {
			t.Fatalf("query %d userId: want=%v got=%v", i, w, runner.params[i]["userId"])
		}
	}
	if runner.params[3]["email"] != "a@example.com" {
		t.Fatalf("email: want=%q got=%v", "a@example.com", runner.params[3]["email"])
	}
}

func TestRecommendationsEmptyIsSuccess(t *testing.T) {
	log := testLogger(t)
	svc := NewPathwayService(log, &fakeSessions{runner: &scriptedRunner{}}, nil, nil, PathwayConfig{})
	items, err := svc.Recommendations(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("want empty non-nil list got=%v", items)
	}
}

func TestStoreFailureReleasesSessionAndMapsTo500(t *testing.T) {
	log := testLogger(t)
	runner := &scriptedRunner{replies: []scriptedReply{{err: errors.New("Neo.ClientError.Statement.SyntaxError: MATCH (q ...")}}}
	sessions := &fakeSessions{runner: runner}
	svc := NewPathwayService(log, sessions, nil, nil, PathwayConfig{})

	_, err := svc.PathwayGraph(context.Background(), "4:q:1")
	if err == nil {
		t.Fatal("expected error")
	}
	ae, ok := apierr.As(err)
	if !ok || ae.Status != http.StatusInternalServerError || ae.Code != "pathway_graph_failed" {
		t.Fatalf("error: %#v", err)
	}
	if sessions.opened != 1 || sessions.closed != 1 {
		t.Fatalf("session leaked: opened=%d closed=%d", sessions.opened, sessions.closed)
	}
}

func TestUnconfiguredGraphIsStoreUnavailable(t *testing.T) {
	log := testLogger(t)
	var client *neo4jdb.Client
	svc := NewPathwayService(log, client, nil, nil, PathwayConfig{})
	_, err := svc.SimilarCourses(context.Background(), "q1")
	if apierr.StatusOf(err) != http.StatusInternalServerError || !errors.Is(err, neo4jdb.ErrNotConfigured) {
		t.Fatalf("error: %v", err)
	}
}

func TestPathwayNotFound(t *testing.T) {
	log := testLogger(t)
	svc := NewPathwayService(log, &fakeSessions{runner: &scriptedRunner{}}, nil, nil, PathwayConfig{})
	_, err := svc.Pathway(context.Background(), "missing")
	if !apierr.IsNotFound(err) {
		t.Fatalf("want not found got=%v", err)
	}
	_, err = svc.Detail(context.Background(), "missing")
	if ae, ok := apierr.As(err); !ok || ae.Code != "module_not_found" {
		t.Fatalf("want module_not_found got=%v", err)
	}
}

func TestMalformedInputBeforeStoreCall(t *testing.T) {
	log := testLogger(t)
	sessions := &fakeSessions{runner: &scriptedRunner{}}
	svc := NewPathwayService(log, sessions, nil, nil, PathwayConfig{})
	ctx := context.Background()

	if _, err := svc.Pathway(ctx, "  "); apierr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("blank id: %v", err)
	}
	if _, err := svc.Catalog(ctx, CatalogRequest{Page: -1}); apierr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("negative page: %v", err)
	}
	if _, err := svc.Recommendations(ctx, ""); apierr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("blank learner: %v", err)
	}
	if sessions.opened != 0 {
		t.Fatalf("store touched: opened=%d", sessions.opened)
	}
}

func TestCatalogDefaultsAndCap(t *testing.T) {
	log := testLogger(t)
	runner := &scriptedRunner{}
	svc := NewPathwayService(log, &fakeSessions{runner: runner}, nil, nil, PathwayConfig{DefaultPageSize: 20, MaxPageSize: 50})

	page, err := svc.Catalog(context.Background(), CatalogRequest{})
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if page.Page != 1 || page.PageSize != 20 {
		t.Fatalf("defaults: %+v", page)
	}
	page, err = svc.Catalog(context.Background(), CatalogRequest{Page: 2, PageSize: 500})
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if page.PageSize != 50 || runner.params[2]["skip"] != int64(50) {
		t.Fatalf("cap: page=%+v params=%v", page, runner.params[2])
	}
}
