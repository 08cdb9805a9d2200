package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reasons a promo code is refused.
const (
	PromoReasonNotFound  = "promo code not found"
	PromoReasonInactive  = "promo code is inactive"
	PromoReasonExpired   = "promo code has expired"
	PromoReasonExhausted = "promo code usage limit reached"
)

// Promo is a percentage discount code.
type Promo struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"` // Stored upper-case.
	DiscountPercent int       `json:"discountPercent"`
	MaxUses         *int      `json:"maxUses"` // Nil means unlimited.
	CurrentUses     int       `json:"currentUses"`
	ExpiresAt       time.Time `json:"expiresAt"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// RejectionReason returns why the promo cannot be used at now, or "".
func (p *Promo) RejectionReason(now time.Time) string {
	switch {
	case !p.IsActive:
		return PromoReasonInactive
	case !now.Before(p.ExpiresAt):
		return PromoReasonExpired
	case p.MaxUses != nil && p.CurrentUses >= *p.MaxUses:
		return PromoReasonExhausted
	default:
		return ""
	}
}
