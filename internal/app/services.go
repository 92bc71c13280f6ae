package app

import (
	"github.com/yungbote/learnpath-backend/internal/normalization"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
	"github.com/yungbote/learnpath-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	Identity services.IdentityResolver
	Pathways services.PathwayService
}

func wireServices(log *logger.Logger, cfg Config, clients Clients, reposet Repos) Services {
	log.Info("Wiring services...")
	identity := services.NewIdentityResolver(log, reposet.User)
	norm := normalization.New(normalization.LoadKeys(log))
	return Services{
		Auth:     services.NewAuthService(log, cfg.JWTSecretKey, cfg.JWTIssuer),
		Identity: identity,
		Pathways: services.NewPathwayService(log, clients.Neo4j, identity, norm, cfg.Pathways),
	}
}
