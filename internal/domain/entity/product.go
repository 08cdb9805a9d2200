package entity

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LocalizedText holds the English and Arabic rendition of a catalog field.
type LocalizedText struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// IsComplete reports whether both languages are present.
func (t LocalizedText) IsComplete() bool {
	return strings.TrimSpace(t.EN) != "" && strings.TrimSpace(t.AR) != ""
}

// Product is a sellable catalog item.
type Product struct {
	ID              uuid.UUID        `json:"id"`
	Name            LocalizedText    `json:"name"`
	Category        LocalizedText    `json:"category"`
	Description     LocalizedText    `json:"description"`
	Slug            string           `json:"slug"` // Assigned once at creation.
	ActualPrice     decimal.Decimal  `json:"actualPrice"`
	DiscountedPrice *decimal.Decimal `json:"discountedPrice,omitempty"`
	Images          []string         `json:"images"`
	Image           string           `json:"image"` // Legacy single image, always Images[0].
	IsAvailable     bool             `json:"isAvailable"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// EffectivePrice is the price a shopper pays right now.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}

	return p.ActualPrice
}

// SetImages replaces the image list and keeps the legacy field in sync.
func (p *Product) SetImages(urls []string) {
	p.Images = urls
	p.Image = ""
	if len(urls) > 0 {
		p.Image = urls[0]
	}
}

// ProductSummary is the expanded product reference embedded in order reads.
type ProductSummary struct {
	ID    uuid.UUID     `json:"id"`
	Name  LocalizedText `json:"name"`
	Slug  string        `json:"slug"`
	Image string        `json:"image"`
}

// Summary projects the product for order and cart expansion.
func (p *Product) Summary() *ProductSummary {
	return &ProductSummary{ID: p.ID, Name: p.Name, Slug: p.Slug, Image: p.Image}
}

// NewSlug derives a slug from an English name, the batch timestamp and the
// draft's index within the batch, so slugs in one batch never collide.
func NewSlug(nameEN string, at time.Time, index int) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(nameEN)) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}

	base := strings.TrimSuffix(b.String(), "-")
	if base == "" {
		base = "product"
	}

	return base + "-" + strconv.FormatInt(at.UnixMilli(), 10) + "-" + strconv.Itoa(index)
}
