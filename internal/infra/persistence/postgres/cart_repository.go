package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements repository.CartRepository. Every method touches
// one line with a single statement, so concurrent edits never overwrite
// each other.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// AddItem upserts the line, adding to the stored quantity on conflict.
func (repo *cartRepository) AddItem(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"quantity":       gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
					"price_snapshot": gorm.Expr("EXCLUDED.price_snapshot"),
					"updated_at":     gorm.Expr("EXCLUDED.updated_at"),
				}),
			},
			clause.Returning{},
		).
		Create(itemM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidQuantity
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	item.Quantity = itemM.Quantity
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// SetQuantity overwrites the quantity of one line.
func (repo *cartRepository) SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Updates(map[string]any{"quantity": quantity, "updated_at": time.Now()})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidQuantity
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// RemoveItem deletes one line.
func (repo *cartRepository) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// Clear empties the cart. Clearing an empty cart is not an error.
func (repo *cartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

// ListItems returns the lines with product summaries, oldest first.
func (repo *cartRepository) ListItems(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	var itemMs []*model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&itemMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	productIDs := make([]uuid.UUID, 0, len(itemMs))
	for _, itemM := range itemMs {
		productIDs = append(productIDs, itemM.ProductID)
	}

	summaries, err := loadProductSummaries(ctx, repo.db, productIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*entity.CartItem, 0, len(itemMs))
	for _, itemM := range itemMs {
		item := toCartItemDomain(itemM)
		item.Product = summaries[itemM.ProductID]
		items = append(items, item)
	}

	return items, nil
}

// loadProductSummaries expands product ids. Deleted products are absent from the map.
func loadProductSummaries(ctx context.Context, db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]*entity.ProductSummary, error) {
	summaries := make(map[uuid.UUID]*entity.ProductSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	var productMs []*model.ProductModel
	if err := db.WithContext(ctx).
		Select("id", "name", "slug", "image", "images").
		Where("id IN ?", ids).
		Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load product summaries")
	}

	for _, productM := range productMs {
		summaries[productM.ID] = toProductDomain(productM).Summary()
	}

	return summaries, nil
}

// --- Mapper Functions ---

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	return &entity.CartItem{
		UserID:        data.UserID,
		ProductID:     data.ProductID,
		Quantity:      data.Quantity,
		PriceSnapshot: data.PriceSnapshot,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	return &model.CartItemModel{
		UserID:        data.UserID,
		ProductID:     data.ProductID,
		Quantity:      data.Quantity,
		PriceSnapshot: data.PriceSnapshot,
		UpdatedAt:     data.UpdatedAt,
	}
}
