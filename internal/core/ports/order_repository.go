// Package ports defines the contracts between the workflow core and its
// adapters: repositories, the unit of work, and the audit log.
package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates and their
// append-only status history. The order store owns both.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the remainder of
	// the surrounding transaction, serializing concurrent transitions on the
	// same order. Outside a transaction it behaves like Get.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AppendHistory records one successful transition. History is
	// append-only; entries are never updated or deleted.
	AppendHistory(ctx context.Context, entry order.HistoryEntry) error

	// GetHistory returns the order's transition history ordered by creation time.
	GetHistory(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error)
}
