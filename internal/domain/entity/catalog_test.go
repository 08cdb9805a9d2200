package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewSlug(t *testing.T) {
	at := time.UnixMilli(1760000000000)

	tests := []struct {
		name   string
		nameEN string
		index  int
		want   string
	}{
		{name: "words", nameEN: "Chocolate Cake", index: 0, want: "chocolate-cake-1760000000000-0"},
		{name: "punctuation collapses", nameEN: "  Rose & Lily!! Box ", index: 2, want: "rose-lily-box-1760000000000-2"},
		{name: "non latin falls back", nameEN: "كيك", index: 1, want: "product-1760000000000-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewSlug(tt.nameEN, at, tt.index))
		})
	}
}

func TestNewSlug_UniqueWithinBatch(t *testing.T) {
	at := time.Now()
	assert.NotEqual(t, NewSlug("Cake", at, 0), NewSlug("Cake", at, 1))
}

func TestProduct_EffectivePrice(t *testing.T) {
	discount := decimal.RequireFromString("4.250")
	p := &Product{ActualPrice: decimal.RequireFromString("5")}
	assert.True(t, p.EffectivePrice().Equal(decimal.RequireFromString("5")))

	p.DiscountedPrice = &discount
	assert.True(t, p.EffectivePrice().Equal(discount))
}

func TestProduct_SetImages(t *testing.T) {
	p := &Product{}
	p.SetImages([]string{"https://cdn/a.png", "https://cdn/b.png"})
	assert.Equal(t, "https://cdn/a.png", p.Image)

	p.SetImages(nil)
	assert.Empty(t, p.Image)
}

func TestNewCart_Subtotal(t *testing.T) {
	cart := NewCart([]*CartItem{
		{ProductID: uuid.New(), Quantity: 3, PriceSnapshot: decimal.RequireFromString("1.250")},
		{ProductID: uuid.New(), Quantity: 1, PriceSnapshot: decimal.RequireFromString("2")},
	})
	assert.True(t, cart.Subtotal.Equal(decimal.RequireFromString("5.75")))

	empty := NewCart(nil)
	assert.NotNil(t, empty.Items)
	assert.True(t, empty.Subtotal.IsZero())
}

func TestPromo_RejectionReason(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	limit := 5

	tests := []struct {
		name  string
		promo Promo
		want  string
	}{
		{name: "usable", promo: Promo{IsActive: true, ExpiresAt: now.Add(time.Hour)}, want: ""},
		{name: "inactive", promo: Promo{IsActive: false, ExpiresAt: now.Add(time.Hour)}, want: PromoReasonInactive},
		{name: "expired at boundary", promo: Promo{IsActive: true, ExpiresAt: now}, want: PromoReasonExpired},
		{name: "exhausted", promo: Promo{IsActive: true, ExpiresAt: now.Add(time.Hour), MaxUses: &limit, CurrentUses: 5}, want: PromoReasonExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.promo.RejectionReason(now))
		})
	}
}

func TestCityArea_ActiveArea(t *testing.T) {
	city := &CityArea{Areas: []Area{
		{Name: "Salmiya", ShippingPrice: decimal.NewFromInt(2), IsActive: true},
		{Name: "Jabriya", ShippingPrice: decimal.NewFromInt(3), IsActive: false},
	}}

	area, ok := city.ActiveArea("salmiya")
	assert.True(t, ok)
	assert.Equal(t, "Salmiya", area.Name)

	_, ok = city.ActiveArea("jabriya")
	assert.False(t, ok)
}

func TestRoles(t *testing.T) {
	assert.True(t, RoleAdmin.IsStaff())
	assert.True(t, RoleManager.IsStaff())
	assert.False(t, RoleUser.IsStaff())
	assert.True(t, Roles{RoleAdmin, RoleManager}.Contains(RoleManager))
	assert.False(t, Role("root").IsValid())
}
