package repository

import "context"

// TransactionManager runs multi-step writes atomically without exposing the
// underlying driver to the use case layer.
type TransactionManager interface {
	// Execute runs fn within a database transaction. A returned error rolls
	// the transaction back, otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	LocationRepo() LocationRepository
	BusinessInfoRepo() BusinessInfoRepository
}
