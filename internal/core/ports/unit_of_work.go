package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per workflow operation,
// giving each operation its own isolated transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one workflow operation. Every
// repository obtained from it participates in the same transaction, so a
// transition's order mutation, checklist mutation, and history append commit
// or roll back together.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// ChecklistRepository returns a ChecklistRepository bound to the current transaction.
	ChecklistRepository() ChecklistRepository

	// CommissionRepository returns a CommissionRepository bound to the current transaction.
	CommissionRepository() CommissionRepository
}
