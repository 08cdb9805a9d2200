package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// LocalizedTextRecord is the jsonb shape of a localized catalog field.
type LocalizedTextRecord struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID              uuid.UUID                               `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name            datatypes.JSONType[LocalizedTextRecord] `gorm:"type:jsonb;not null"`
	Category        datatypes.JSONType[LocalizedTextRecord] `gorm:"type:jsonb;not null"`
	CategoryKey     string                                  `gorm:"type:varchar(255);not null;index"` // Lower-cased English category, for filtering.
	Description     datatypes.JSONType[LocalizedTextRecord] `gorm:"type:jsonb"`
	Slug            string                                  `gorm:"type:varchar(255);not null;uniqueIndex"`
	ActualPrice     decimal.Decimal                         `gorm:"type:numeric(12,3);not null"`
	DiscountedPrice decimal.NullDecimal                     `gorm:"type:numeric(12,3)"`
	Images          datatypes.JSONSlice[string]             `gorm:"type:jsonb;not null"`
	Image           string                                  `gorm:"type:text"`
	IsAvailable     bool                                    `gorm:"not null;default:true;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
