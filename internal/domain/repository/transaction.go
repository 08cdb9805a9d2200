package repository

import "context"

// TransactionManager runs usecase work inside one database transaction.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewProductRepository() ProductRepository
	NewOrderRepository() OrderRepository
	NewPaymentEventRepository() PaymentEventRepository
	NewPromoRepository() PromoRepository
}
