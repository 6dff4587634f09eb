// Package commands contains the workflow operations that move orders through
// their lifecycle. Implements the Command pattern for write operations: each
// operation is a guard-constructed command plus a handler that validates,
// opens a unit of work, applies every side effect of the transition, and
// commits atomically.
package commands

import (
	"context"

	"atelier/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface covering the aggregates the
// operation touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ChecklistRepoFactory provides access to the checklist repository within a transaction.
	ChecklistRepoFactory interface {
		ChecklistRepository() ports.ChecklistRepository
	}

	// CommissionRepoFactory provides access to the commission repository within a transaction.
	CommissionRepoFactory interface {
		CommissionRepository() ports.CommissionRepository
	}

	// OrderUoW manages transactions for operations touching only the order
	// aggregate and its history: approve, reject, deliver.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductionUoW manages transactions for production transitions, which
	// touch the order and its checklist together.
	ProductionUoW interface {
		TxManager
		OrderRepoFactory
		ChecklistRepoFactory
	}

	// ProductionUoWFactory creates new production unit of work instances.
	ProductionUoWFactory interface {
		Create() ProductionUoW
	}

	// CommissionUoW manages transactions for commission payment, which reads
	// the order and upserts its commission.
	CommissionUoW interface {
		TxManager
		OrderRepoFactory
		CommissionRepoFactory
	}

	// CommissionUoWFactory creates new commission unit of work instances.
	CommissionUoWFactory interface {
		Create() CommissionUoW
	}
)
