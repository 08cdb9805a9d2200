// Package postgres implements the domain repositories with GORM on PostgreSQL.
package postgres

import (
	"context"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one *gorm.DB transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f *gormRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) NewPaymentEventRepository() repository.PaymentEventRepository {
	return NewPaymentEventRepository(f.tx)
}

func (f *gormRepositoryFactory) NewPromoRepository() repository.PromoRepository {
	return NewPromoRepository(f.tx)
}

// NewTransactionManager is the fx provider for the transaction manager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. A panic inside fn rolls back and re-panics.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Keep the business error as the cause.
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
