package ports

import (
	"context"

	"atelier/internal/core/domain/model/checklist"
	"atelier/internal/core/domain/model/kernel"
)

// ChecklistRepository is the persistence contract for production checklists.
// Each order has at most one checklist row, created lazily on first entry
// into production and preserved across regressions.
type ChecklistRepository interface {
	// Add persists a new checklist.
	Add(ctx context.Context, aggregate *checklist.Checklist) error

	// Update persists changes to an existing checklist.
	Update(ctx context.Context, aggregate *checklist.Checklist) error

	// GetByOrder retrieves the checklist for an order. Returns an
	// ObjectNotFoundError when the order never entered production.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*checklist.Checklist, error)
}
