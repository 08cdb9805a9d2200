package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// AreaRecord is the jsonb shape of one delivery area.
type AreaRecord struct {
	Name          string          `json:"name"`
	ShippingPrice decimal.Decimal `json:"shippingPrice"`
	IsActive      bool            `json:"isActive"`
}

// CityAreaModel is the GORM-specific struct for the 'city_areas' table.
type CityAreaModel struct {
	ID        uuid.UUID                       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	City      string                          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Areas     datatypes.JSONSlice[AreaRecord] `gorm:"type:jsonb;not null"`
	IsActive  bool                            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CityAreaModel) TableName() string {
	return "city_areas"
}

// PromoModel is the GORM-specific struct for the 'promos' table.
type PromoModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Code            string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	DiscountPercent int       `gorm:"not null;check:discount_percent BETWEEN 1 AND 90"`
	MaxUses         *int
	CurrentUses     int       `gorm:"not null;default:0"`
	ExpiresAt       time.Time `gorm:"not null"`
	IsActive        bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromoModel) TableName() string {
	return "promos"
}

// ClosedDayModel is one manually closed date in 'closed_schedules'.
type ClosedDayModel struct {
	Date      string    `gorm:"type:varchar(10);primaryKey"`
	ClosedBy  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClosedDayModel) TableName() string {
	return "closed_schedules"
}

// All lists every model, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&ProductModel{},
		&CartItemModel{},
		&OrderModel{},
		&PaymentEventModel{},
		&CityAreaModel{},
		&PromoModel{},
		&ClosedDayModel{},
	}
}
