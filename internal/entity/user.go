package entity

import (
	"time"

	"gorm.io/gorm"
)

// User is the account that owns alerts. Credential handling lives in the
// surrounding layers; the monitoring core only references users by id.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"column:email;uniqueIndex:uk_user_email;not null" json:"email"`
	PasswordHash string         `gorm:"column:password_hash;not null" json:"-"`
	IsActive     bool           `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
