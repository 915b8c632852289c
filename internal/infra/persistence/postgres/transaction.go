// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// NewGameRepository creates a game repository bound to the transaction.
func (f *gormRepositoryFactory) NewGameRepository() repository.GameRepository {
	return NewGameRepository(f.tx)
}

// NewReviewAggregateRepository creates an aggregate repository bound to the transaction.
func (f *gormRepositoryFactory) NewReviewAggregateRepository() repository.ReviewAggregateRepository {
	return NewReviewAggregateRepository(f.tx)
}

// NewReviewRepository creates a review repository bound to the transaction.
func (f *gormRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}

// NewReviewFeedSyncRepository creates a feed sync repository bound to the transaction.
func (f *gormRepositoryFactory) NewReviewFeedSyncRepository() repository.ReviewFeedSyncRepository {
	return NewReviewFeedSyncRepository(f.tx)
}

// NewSearchCacheRepository creates a search cache repository bound to the transaction.
func (f *gormRepositoryFactory) NewSearchCacheRepository() repository.SearchCacheRepository {
	return NewSearchCacheRepository(f.tx)
}

// NewUserRepository creates a new user repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// NewFavoriteRepository creates a favorite repository bound to the transaction.
func (f *gormRepositoryFactory) NewFavoriteRepository() repository.FavoriteRepository {
	return NewFavoriteRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.execute(ctx, nil, fn)
}

// ExecuteSnapshot runs fn in a read-only transaction pinned to one snapshot.
// Postgres defaults to READ COMMITTED, where each statement takes a new snapshot.
func (tm *gormTransactionManager) ExecuteSnapshot(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.execute(ctx, snapshotTxOptions(tm.db.Dialector.Name()), fn)
}

// snapshotTxOptions returns nil for SQLite, whose transactions are serializable already.
func snapshotTxOptions(dialect string) *sql.TxOptions {
	if dialect != "postgres" {
		return nil
	}

	return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
}

func (tm *gormTransactionManager) execute(ctx context.Context, opts *sql.TxOptions, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin(opts)
	if tx.Error != nil {
		return domainerrors.NewStoreError(tx.Error, "failed to begin transaction")
	}

	// A panic inside the callback must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// The original error is more meaningful than the rollback failure.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return domainerrors.NewStoreError(err, "failed to commit transaction")
	}

	return nil
}
