package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/learnpath-backend/internal/http/handlers"
	httpMW "github.com/yungbote/learnpath-backend/internal/http/middleware"
	"github.com/yungbote/learnpath-backend/internal/observability"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	AllowedOrigins []string
	Metrics        *observability.Metrics

	AuthMiddleware *httpMW.AuthMiddleware

	PathwayHandler *httpH.PathwayHandler
	CourseHandler  *httpH.CourseHandler
	HealthHandler  *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}

	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	if cfg.AuthMiddleware != nil {
		api.Use(cfg.AuthMiddleware.RequireAuth())
	}

	// Recommendations + pathways
	if cfg.PathwayHandler != nil {
		api.GET("/recommendations", cfg.PathwayHandler.ListRecommendations)
		api.GET("/pathways/:id", cfg.PathwayHandler.GetPathway)
		api.GET("/pathways/:id/graph", cfg.PathwayHandler.GetPathwayGraph)
		api.GET("/pathways/:id/similar-courses", cfg.PathwayHandler.ListSimilarCourses)
	}

	// Modules + catalog
	if cfg.CourseHandler != nil {
		api.GET("/modules/:id", cfg.CourseHandler.GetModule)
		api.GET("/courses/:id", cfg.CourseHandler.GetModule)
		api.GET("/courses", cfg.CourseHandler.ListCourses)
	}

	return r
}
