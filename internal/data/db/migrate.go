package db

import (
	"gorm.io/gorm"

	types "github.com/yungbote/learnpath-backend/internal/domain"
)

// AutoMigrateAll creates the identity tables. The graph is maintained by ingestion
// and is never migrated from here.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.User{},
	)
}
