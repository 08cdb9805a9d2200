package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateSlug is returned when a slug is already taken.
	ErrDuplicateSlug = errors.New("slug already exists")
)

// ProductFilter narrows ListProducts.
type ProductFilter struct {
	Category      string // English category, case-insensitive.
	AvailableOnly bool
}

// ProductRepository persists the catalog.
type ProductRepository interface {
	// CreateBatch inserts all products or none.
	CreateBatch(ctx context.Context, products []*entity.Product) error

	// Update overwrites the mutable catalog fields. The slug is never changed.
	Update(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a product by slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindByIDs retrieves the products that still exist among ids.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// List returns products matching filter, newest first.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// SetAvailability flips the availability flag.
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error

	// Delete physically removes a product. Orders and carts keep their references.
	Delete(ctx context.Context, id uuid.UUID) error
}
