package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrGetOrdersInProductionQueryIsNotConstructed = errors.New(
	"GetOrdersInProductionQuery must be created via NewGetOrdersInProductionQuery constructor",
)

// GetOrdersInProductionQuery retrieves all orders currently on the production
// floor together with their checklist progress. Backs the workshop dashboard.
//
// Example:
//
//	query := NewGetOrdersInProductionQuery()
//	handler := NewGetOrdersInProductionQueryHandler(db)
//	rows, err := handler.Handle(ctx, query)
type GetOrdersInProductionQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersInProductionQuery creates a query for orders in production.
// This is a parameterless query.
func NewGetOrdersInProductionQuery() GetOrdersInProductionQuery {
	return GetOrdersInProductionQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersInProductionQueryIsNotConstructed if validation fails.
func (q GetOrdersInProductionQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersInProductionQueryIsNotConstructed)
}

// GetOrdersInProductionQueryResponse represents one order on the floor with
// its per-stage progress.
type GetOrdersInProductionQueryResponse struct {
	ID            kernel.UUID
	FinalValue    kernel.Money
	StartedAt     *time.Time
	ResponsibleID *kernel.UUID
	Cut           bool
	Sewing        bool
	Finishing     bool
	QualityCheck  bool
}
