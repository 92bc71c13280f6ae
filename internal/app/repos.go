package app

import (
	"github.com/yungbote/learnpath-backend/internal/data/repos"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
)

type Repos struct {
	User repos.UserRepo
}

func wireRepos(log *logger.Logger, clients Clients) Repos {
	log.Info("Wiring repos...")
	if clients.Identity == nil {
		return Repos{}
	}
	return Repos{
		User: repos.NewUserRepo(clients.Identity.DB(), log),
	}
}
