package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the workflow. It owns the lifecycle status,
// the sales rep who owns the order, the fixed final value, and the timestamps
// recorded as the order moves through the state machine.
//
// Invariants:
//   - Status transitions follow the graph defined on Status.
//   - Each successful transition sets exactly one new lifecycle timestamp;
//     timestamps never move backward.
//   - productionResponsibleID is set only while in production and cleared on
//     regression to approved.
//   - finalValue is read-only once the order leaves quote (no mutator exists).
//
// Fields are private; state changes go through the transition methods, which
// return typed errors from the errs package on violation.
type Order struct {
	id              kernel.UUID
	ownerSalesRepID kernel.UUID
	finalValue      kernel.Money
	status          Status

	approvedAt           *time.Time
	productionStartedAt  *time.Time
	productionFinishedAt *time.Time
	deliveredAt          *time.Time

	productionResponsibleID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewOrder creates a new order in quote status.
//
// Parameters:
//   - id: unique identifier (must be a constructed UUID)
//   - ownerSalesRepID: the sales representative who created and owns the order
//   - finalValue: the quoted monetary value (non-negative)
func NewOrder(id kernel.UUID, ownerSalesRepID kernel.UUID, finalValue kernel.Money) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		ownerSalesRepID.Validate(),
		finalValue.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		ownerSalesRepID: ownerSalesRepID,
		finalValue:      finalValue,
		status:          StatusQuote,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status and the already-recorded timestamps.
func RestoreOrder(
	id kernel.UUID,
	ownerSalesRepID kernel.UUID,
	finalValue kernel.Money,
	status Status,
	approvedAt, productionStartedAt, productionFinishedAt, deliveredAt *time.Time,
	productionResponsibleID *kernel.UUID,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		ownerSalesRepID.Validate(),
		finalValue.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if productionResponsibleID != nil {
		if err := productionResponsibleID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:                      id,
		ownerSalesRepID:         ownerSalesRepID,
		finalValue:              finalValue,
		status:                  status,
		approvedAt:              approvedAt,
		productionStartedAt:     productionStartedAt,
		productionFinishedAt:    productionFinishedAt,
		deliveredAt:             deliveredAt,
		productionResponsibleID: productionResponsibleID,
		guard:                   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerSalesRepID returns the sales representative owning the order.
func (o *Order) OwnerSalesRepID() kernel.UUID {
	return o.ownerSalesRepID
}

// FinalValue returns the quoted monetary value.
func (o *Order) FinalValue() kernel.Money {
	return o.finalValue
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ApprovedAt returns the approval timestamp, nil before approval.
func (o *Order) ApprovedAt() *time.Time {
	return o.approvedAt
}

// ProductionStartedAt returns when production started, nil outside production.
func (o *Order) ProductionStartedAt() *time.Time {
	return o.productionStartedAt
}

// ProductionFinishedAt returns when production finished, nil before finishing.
func (o *Order) ProductionFinishedAt() *time.Time {
	return o.productionFinishedAt
}

// DeliveredAt returns the delivery timestamp, nil before delivery.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// ProductionResponsible returns the actor responsible for production,
// nil when the order is not in production.
func (o *Order) ProductionResponsible() *kernel.UUID {
	return o.productionResponsibleID
}

// AuthorizeQuoteDecision checks whether the actor may approve or reject this
// quote: managers always may, sales reps only for orders they own. The check
// runs strictly before any mutation, so a forbidden caller leaves no trace.
func (o *Order) AuthorizeQuoteDecision(operation string, role actor.Role, actorID kernel.UUID) error {
	if err := role.Validate(); err != nil {
		return err
	}

	switch role {
	case actor.RoleManager:
		return nil
	case actor.RoleSalesRep:
		if o.ownerSalesRepID.IsEqual(actorID) {
			return nil
		}
		return errs.NewOperationForbiddenErrorWithCause(
			operation,
			role.String(),
			fmt.Errorf("sales rep %s does not own order %s", actorID, o.id),
		)
	default:
		return errs.NewOperationForbiddenError(operation, role.String())
	}
}

// Approve moves the order from quote to approved and records the approval time.
func (o *Order) Approve(now time.Time) error {
	if o.status != StatusQuote {
		return errs.NewInvalidStateError("approve order", o.status.String())
	}

	o.status = StatusApproved
	o.approvedAt = &now
	return nil
}

// Reject moves the order from quote to canceled. The rejection reason is
// recorded in the status history, not on the order itself.
func (o *Order) Reject() error {
	if o.status != StatusQuote {
		return errs.NewInvalidStateError("reject order", o.status.String())
	}

	o.status = StatusCanceled
	return nil
}

// StartProduction moves the order from approved to in_production, assigns the
// responsible actor, and records the production start time.
func (o *Order) StartProduction(responsibleID kernel.UUID, now time.Time) error {
	if err := responsibleID.Validate(); err != nil {
		return err
	}
	if o.status != StatusApproved {
		return errs.NewInvalidStateError("start production", o.status.String())
	}

	o.status = StatusInProduction
	o.productionResponsibleID = &responsibleID
	o.productionStartedAt = &now
	return nil
}

// FinishProduction moves the order from in_production to finished and records
// the finish time. Checklist completeness is the caller's responsibility; the
// workflow engine checks it against the Checklist aggregate in the same
// transaction before calling this.
func (o *Order) FinishProduction(now time.Time) error {
	if o.status != StatusInProduction {
		return errs.NewInvalidStateError("finish production", o.status.String())
	}

	o.status = StatusFinished
	o.productionFinishedAt = &now
	return nil
}

// ReturnToQueue is the manual regression from in_production back to approved.
// It clears the production responsible and the production timestamps; the
// checklist entry is reset separately by the workflow engine.
func (o *Order) ReturnToQueue() error {
	if o.status != StatusInProduction {
		return errs.NewInvalidStateError("return to queue", o.status.String())
	}

	o.status = StatusApproved
	o.productionResponsibleID = nil
	o.productionStartedAt = nil
	o.productionFinishedAt = nil
	return nil
}

// Deliver moves the order from finished to delivered and records the delivery
// time. Delivered is terminal and unlocks commission payment.
func (o *Order) Deliver(now time.Time) error {
	if o.status != StatusFinished {
		return errs.NewInvalidStateError("deliver order", o.status.String())
	}

	o.status = StatusDelivered
	o.deliveredAt = &now
	return nil
}

// ProductionMinutes returns the elapsed production time in whole minutes,
// rounded to nearest. It requires both production timestamps to be set.
func (o *Order) ProductionMinutes() (int, error) {
	if o.productionStartedAt == nil || o.productionFinishedAt == nil {
		return 0, errs.NewValueIsRequiredError("production timestamps")
	}

	minutes := o.productionFinishedAt.Sub(*o.productionStartedAt).Minutes()
	return int(math.Round(minutes)), nil
}
