package app

import (
	"github.com/yungbote/learnpath-backend/internal/http"
	httpH "github.com/yungbote/learnpath-backend/internal/http/handlers"
	httpMW "github.com/yungbote/learnpath-backend/internal/http/middleware"
	"github.com/yungbote/learnpath-backend/internal/observability"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health  *httpH.HealthHandler
	Pathway *httpH.PathwayHandler
	Course  *httpH.CourseHandler
}

func wireHandlers(log *logger.Logger, clients Clients, services Services) Handlers {
	log.Info("Wiring handlers...")
	// nil entries report "not configured" and fail readiness.
	stores := map[string]httpH.Pinger{"graph": nil}
	if clients.Neo4j != nil {
		stores["graph"] = clients.Neo4j
	}
	if clients.Identity != nil {
		stores["identity"] = clients.Identity
	}
	return Handlers{
		Health:  httpH.NewHealthHandler(log, stores),
		Pathway: httpH.NewPathwayHandler(log, services.Pathways),
		Course:  httpH.NewCourseHandler(log, services.Pathways),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireServer(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:            log,
		ServiceName:    cfg.ServiceName,
		AllowedOrigins: cfg.AllowedOrigins,
		Metrics:        metrics,
		AuthMiddleware: middleware.Auth,
		PathwayHandler: handlers.Pathway,
		CourseHandler:  handlers.Course,
		HealthHandler:  handlers.Health,
	})
}
