package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one line of an identity's cart, unique per (UserID, ProductID).
type CartItem struct {
	UserID        uuid.UUID       `json:"-"`
	ProductID     uuid.UUID       `json:"productId"`
	Quantity      int             `json:"quantity"`
	PriceSnapshot decimal.Decimal `json:"priceSnapshot"`
	Product       *ProductSummary `json:"product,omitempty"` // Nil when the product was deleted.
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Cart is the read model of all cart lines of one identity.
type Cart struct {
	Items    []*CartItem     `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// NewCart builds a cart and its subtotal from its lines.
func NewCart(items []*CartItem) *Cart {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.PriceSnapshot.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if items == nil {
		items = []*CartItem{}
	}

	return &Cart{Items: items, Subtotal: subtotal}
}
