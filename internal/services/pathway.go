package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/yungbote/learnpath-backend/internal/data/graph"
	"github.com/yungbote/learnpath-backend/internal/domain"
	"github.com/yungbote/learnpath-backend/internal/normalization"
	"github.com/yungbote/learnpath-backend/internal/observability"
	"github.com/yungbote/learnpath-backend/internal/platform/apierr"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
	"github.com/yungbote/learnpath-backend/internal/platform/neo4jdb"
)

// CatalogRequest is a raw page request. Zero Page/PageSize mean "use the default".
type CatalogRequest struct {
	Page     int
	PageSize int
	Search   string
}

type PathwayConfig struct {
	SimilarLimit    int
	DefaultPageSize int
	MaxPageSize     int
}

// PathwayService serves every graph read. Each call holds exactly one read session.
type PathwayService interface {
	Recommendations(ctx context.Context, learnerID string) ([]domain.Pathway, error)
	Pathway(ctx context.Context, id string) (domain.Pathway, error)
	PathwayGraph(ctx context.Context, id string) (domain.GraphView, error)
	SimilarCourses(ctx context.Context, id string) ([]domain.Course, error)
	Detail(ctx context.Context, id string) (domain.Detail, error)
	Catalog(ctx context.Context, req CatalogRequest) (domain.CatalogPage, error)
}

type pathwayService struct {
	log      *logger.Logger
	graph    neo4jdb.SessionProvider
	identity IdentityResolver
	norm     *normalization.Normalizer
	cfg      PathwayConfig
}

func NewPathwayService(
	log *logger.Logger,
	graphStore neo4jdb.SessionProvider,
	identity IdentityResolver,
	norm *normalization.Normalizer,
	cfg PathwayConfig,
) PathwayService {
	if norm == nil {
		norm = normalization.New(nil)
	}
	if cfg.SimilarLimit <= 0 {
		cfg.SimilarLimit = graph.DefaultSimilarLimit
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 20
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	if cfg.DefaultPageSize > cfg.MaxPageSize {
		cfg.DefaultPageSize = cfg.MaxPageSize
	}
	return &pathwayService{
		log:      log.With("service", "PathwayService"),
		graph:    graphStore,
		identity: identity,
		norm:     norm,
		cfg:      cfg,
	}
}

func storeErr(code string, err error) error {
	if errors.Is(err, neo4jdb.ErrNotConfigured) {
		return apierr.StoreUnavailable(code, err)
	}
	return apierr.StoreUnavailable(code, fmt.Errorf("graph read: %w", err))
}

func requireID(id, code string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", apierr.MalformedInput(code, errors.New("id is required"))
	}
	return id, nil
}

func (s *pathwayService) Recommendations(ctx context.Context, learnerID string) ([]domain.Pathway, error) {
	ctx, span := observability.StartSpan(ctx, "PathwayService.Recommendations")
	defer span.End()
	learnerID = strings.TrimSpace(learnerID)
	if learnerID == "" {
		return nil, apierr.MalformedInput("missing_learner_id", errors.New("learner id is required"))
	}
	who := Identity{ID: learnerID}
	if s.identity != nil {
		who = s.identity.Resolve(ctx, learnerID)
	}

	var items []domain.Pathway
	err := s.graph.WithReadSession(ctx, func(run neo4jdb.Runner) error {
		var (
			res graph.Resolution
			err error
		)
		items, res, err = graph.Recommendations(ctx, run, s.norm, graph.LearnerKeys{
			ID:       who.ID,
			LegacyID: who.LegacyID,
			Email:    who.Email,
		})
		if err != nil {
			return err
		}
		s.log.Debug("recommendations resolved",
			"learner_id", learnerID,
			"matched", res.Matched,
			"attempts", res.Attempts,
			"count", len(items),
		)
		return nil
	})
	if err != nil {
		return nil, storeErr("recommendations_failed", err)
	}
	if items == nil {
		items = []domain.Pathway{}
	}
	return items, nil
}

func (s *pathwayService) Pathway(ctx context.Context, id string) (domain.Pathway, error) {
	ctx, span := observability.StartSpan(ctx, "PathwayService.Pathway", attribute.String("entity.id", id))
	defer span.End()
	id, err := requireID(id, "missing_pathway_id")
	if err != nil {
		return domain.Pathway{}, err
	}
	var (
		out   domain.Pathway
		found bool
	)
	err = s.graph.WithReadSession(ctx, func(run neo4jdb.Runner) error {
		var err error
		out, found, err = graph.PathwayByID(ctx, run, s.norm, id)
		return err
	})
	if err != nil {
		return domain.Pathway{}, storeErr("pathway_fetch_failed", err)
	}
	if !found {
		return domain.Pathway{}, apierr.NotFound("pathway_not_found", fmt.Errorf("pathway %q not found", id))
	}
	return out, nil
}

func (s *pathwayService) PathwayGraph(ctx context.Context, id string) (domain.GraphView, error) {
	ctx, span := observability.StartSpan(ctx, "PathwayService.PathwayGraph", attribute.String("entity.id", id))
	defer span.End()
	id, err := requireID(id, "missing_pathway_id")
	if err != nil {
		return domain.EmptyGraph(), err
	}
	view := domain.EmptyGraph()
	err = s.graph.WithReadSession(ctx, func(run neo4jdb.Runner) error {
		var err error
		view, err = graph.PathwayGraph(ctx, run, s.norm, id)
		return err
	})
	if err != nil {
		return domain.EmptyGraph(), storeErr("pathway_graph_failed", err)
	}
	return view, nil
}

func (s *pathwayService) SimilarCourses(ctx context.Context, id string) ([]domain.Course, error) {
	ctx, span := observability.StartSpan(ctx, "PathwayService.SimilarCourses", attribute.String("entity.id", id))
	defer span.End()
	id, err := requireID(id, "missing_pathway_id")
	if err != nil {
		return nil, err
	}
	var out []domain.Course
	err = s.graph.WithReadSession(ctx, func(run neo4jdb.Runner) error {
		var err error
		out, err = graph.SimilarCourses(ctx, run, s.norm, id, s.cfg.SimilarLimit)
		return err
	})
	if err != nil {
		return nil, storeErr("similar_courses_failed", err)
	}
	if out == nil {
		out = []domain.Course{}
	}
	return out, nil
}

func (s *pathwayService) Detail(ctx context.Context, id string) (domain.Detail, error) {
	ctx, span := observability.StartSpan(ctx, "PathwayService.Detail", attribute.String("entity.id", id))
	defer span.End()
	id, err := requireID(id, "missing_module_id")
	if err != nil {
		return nil, err
	}
	var (
		out   domain.Detail
		found bool
	)
	err = s.graph.WithReadSession(ctx, func(run neo4jdb.Runner) error {
		var err error
		out, found, err = graph.EntityDetail(ctx, run, s.norm, id)
		return err
	})
	if err != nil {
		return nil, storeErr("module_fetch_failed", err)
	}
	if !found {
		return nil, apierr.NotFound("module_not_found", fmt.Errorf("module %q not found", id))
	}
	return out, nil
}

func (s *pathwayService) Catalog(ctx context.Context, req CatalogRequest) (domain.CatalogPage, error) {
	ctx, span := observability.StartSpan(ctx, "PathwayService.Catalog")
	defer span.End()
	if req.Page < 0 || req.PageSize < 0 {
		return domain.CatalogPage{}, apierr.MalformedInput("invalid_paging", fmt.Errorf("page and pageSize must be positive"))
	}
	q := graph.CatalogQuery{Page: req.Page, PageSize: req.PageSize, Search: req.Search}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = s.cfg.DefaultPageSize
	}
	if q.PageSize > s.cfg.MaxPageSize {
		q.PageSize = s.cfg.MaxPageSize
	}

	var page domain.CatalogPage
	err := s.graph.WithReadSession(ctx, func(run neo4jdb.Runner) error {
		var err error
		page, err = graph.ListCatalog(ctx, run, s.norm, q)
		return err
	})
	if err != nil {
		return domain.CatalogPage{}, storeErr("catalog_fetch_failed", err)
	}
	return page, nil
}
