// Package db carries the ambient-transaction plumbing shared by all
// repositories.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TransactionManager runs functions inside a database transaction and
// threads the transaction through the context, so repositories called
// within fn transparently join it. Mutations and their audit records
// commit or roll back together this way.
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a manager bound to the given handle.
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes fn inside one transaction. A non-nil error
// from fn rolls everything back; otherwise the transaction commits.
// Nested calls join the outer transaction instead of opening a new one.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetTxFromContext returns the ambient transaction when one is running
// and defaultDB otherwise. Repositories route every query through this.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
