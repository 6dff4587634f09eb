package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrGetUnpaidDeliveredOrdersQueryIsNotConstructed = errors.New(
	"GetUnpaidDeliveredOrdersQuery must be created via NewGetUnpaidDeliveredOrdersQuery constructor",
)

// GetUnpaidDeliveredOrdersQuery retrieves delivered orders whose sales rep
// commission has not been paid yet. Backs the payout report and the reminder
// job.
//
// Example:
//
//	query := NewGetUnpaidDeliveredOrdersQuery()
//	handler := NewGetUnpaidDeliveredOrdersQueryHandler(db)
//	rows, err := handler.Handle(ctx, query)
type GetUnpaidDeliveredOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnpaidDeliveredOrdersQuery creates a query for unpaid delivered
// orders. This is a parameterless query.
func NewGetUnpaidDeliveredOrdersQuery() GetUnpaidDeliveredOrdersQuery {
	return GetUnpaidDeliveredOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnpaidDeliveredOrdersQueryIsNotConstructed if validation fails.
func (q GetUnpaidDeliveredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnpaidDeliveredOrdersQueryIsNotConstructed)
}

// GetUnpaidDeliveredOrdersQueryResponse represents one delivered order
// awaiting commission payout. CommissionDue is the persisted commission value
// when a pending row already exists, otherwise the amount the fixed rate
// would derive.
type GetUnpaidDeliveredOrdersQueryResponse struct {
	ID            kernel.UUID
	SalesRepID    kernel.UUID
	FinalValue    kernel.Money
	CommissionDue kernel.Money
	DeliveredAt   time.Time
}
