package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the identity-store record. The graph's User nodes reference it by ID
// (mongoId / id properties), by LegacyID (numeric id from the first data load) or by Email.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LegacyID    string    `gorm:"column:legacy_id;index" json:"legacy_id,omitempty"`
	Email       string    `gorm:"column:email;index" json:"email,omitempty"`
	DisplayName string    `gorm:"column:display_name" json:"display_name,omitempty"`
	Sector      string    `gorm:"column:sector" json:"sector,omitempty"`

	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "user" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
