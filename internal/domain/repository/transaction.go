package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures the listing write, its audit entry and its outbox notification commit together.
type RepositoryFactory interface {
	// NewListingRepository returns a ListingRepository instance bound to the current transaction.
	NewListingRepository() ListingRepository

	// NewAuditRepository returns an AuditRepository instance bound to the current transaction.
	NewAuditRepository() AuditRepository

	// NewOutboxRepository returns an OutboxRepository instance bound to the current transaction.
	NewOutboxRepository() OutboxRepository
}
