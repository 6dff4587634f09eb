package ports

import (
	"context"

	"atelier/internal/core/domain/model/commission"
	"atelier/internal/core/domain/model/kernel"
)

// CommissionRepository is the persistence contract for sales commissions.
// Commissions are keyed uniquely per order and never deleted.
type CommissionRepository interface {
	// Add persists a new commission.
	Add(ctx context.Context, aggregate *commission.Commission) error

	// Update persists changes to an existing commission.
	Update(ctx context.Context, aggregate *commission.Commission) error

	// GetByOrder retrieves the commission for an order. Returns an
	// ObjectNotFoundError when none exists yet.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*commission.Commission, error)
}
