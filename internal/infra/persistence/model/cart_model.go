package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemModel is one row per (user, product) in the 'cart_items' table.
type CartItemModel struct {
	UserID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity      int             `gorm:"not null;check:quantity >= 1"`
	PriceSnapshot decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
