package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/learnpath-backend/internal/data/repos/user"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return user.NewUserRepo(db, baseLog)
}
