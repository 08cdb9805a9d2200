package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Area is a delivery zone inside a city.
type Area struct {
	Name          string          `json:"name"`
	ShippingPrice decimal.Decimal `json:"shippingPrice"`
	IsActive      bool            `json:"isActive"`
}

// CityArea maps a city key to its delivery areas.
type CityArea struct {
	ID        uuid.UUID `json:"id"`
	City      string    `json:"city"`
	Areas     []Area    `json:"areas"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ActiveArea finds an active area by case-insensitive name.
func (c *CityArea) ActiveArea(name string) (*Area, bool) {
	for i := range c.Areas {
		if c.Areas[i].IsActive && strings.EqualFold(c.Areas[i].Name, name) {
			return &c.Areas[i], true
		}
	}

	return nil, false
}
