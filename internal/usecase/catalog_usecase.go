package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImageUpload is one image file attached to a product draft.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ProductDraft is a new catalog item.
type ProductDraft struct {
	Name            entity.LocalizedText
	Category        entity.LocalizedText
	Description     entity.LocalizedText
	ActualPrice     decimal.Decimal
	DiscountedPrice *decimal.Decimal
	IsAvailable     *bool // Nil means available.
	ImageURLs       []string
	Uploads         []ImageUpload
}

// ProductUpdate replaces the mutable fields of an existing product.
// Images are replaced only when ImageURLs or Uploads is non-empty.
type ProductUpdate struct {
	ID uuid.UUID
	ProductDraft
}

// ProductQuery narrows ListProducts.
type ProductQuery struct {
	Category      string
	AvailableOnly bool
}

// CatalogUsecase manages the product catalog.
type CatalogUsecase interface {
	CreateProducts(ctx context.Context, drafts []*ProductDraft) ([]*entity.Product, error)
	UpdateProducts(ctx context.Context, updates []*ProductUpdate) ([]*entity.Product, error)
	ListProducts(ctx context.Context, query ProductQuery) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	// ExportProducts writes the catalog workbook to w and returns its content type.
	ExportProducts(ctx context.Context, w io.Writer) (string, error)
}
