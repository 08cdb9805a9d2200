// Package model holds the GORM table structs. They never leave the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	GoogleID     string    `gorm:"type:varchar(255);index"`
	AvatarURL    string    `gorm:"type:text"`
	Role         string    `gorm:"type:varchar(20);not null;default:user"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
