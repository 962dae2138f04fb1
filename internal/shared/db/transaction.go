// Package db carries a GORM transaction through context so multi-aggregate
// workflow writes commit atomically: reroute resolution touches the request
// and the complaint, follow-up creation touches the follow-up and the parent,
// incident linking touches the incident and the complaint.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key under which an open transaction travels.
type txKey struct{}

// TransactionManager opens transactions and exposes them to repositories
// through the context.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes fn inside a database transaction. The transaction
// rides the derived context into every repository call fn makes; an error
// from fn rolls everything back, a nil return commits.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTx returns the open transaction from ctx, or the base connection when
// the caller runs outside one.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return tm.db.WithContext(ctx)
}

// GetTxFromContext is the repository-side accessor: it yields the transaction
// from ctx when one is open and falls back to defaultDB otherwise, so the
// same repository code serves transactional and standalone calls.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
