package services

import (
	"atelier/internal/core/domain/model/commission"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
)

// CommissionCalculator derives the commission owed to the owning sales rep
// once an order reaches delivered. The rate is the fixed package constant
// commission.DefaultRate.
//
// Business rules:
//   - Only delivered orders earn a commission.
//   - The commission derives from the order's final value and owner; no
//     hidden rate table is consulted.
type CommissionCalculator struct{}

// NewCommissionCalculator creates a new CommissionCalculator instance.
func NewCommissionCalculator() CommissionCalculator {
	return CommissionCalculator{}
}

// Calculate builds the pending Commission for a delivered order.
//
// Returns an InvalidStateError when the order is not delivered; the order is
// never mutated.
func (CommissionCalculator) Calculate(o *order.Order) (*commission.Commission, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.Status() != order.StatusDelivered {
		return nil, errs.NewInvalidStateError("pay commission", o.Status().String())
	}

	return commission.NewCommission(o.ID(), o.OwnerSalesRepID(), o.FinalValue())
}
