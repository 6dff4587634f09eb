// Package commission contains the sales commission aggregate derived from a
// delivered order. At most one commission exists per order; payment is an
// idempotent upsert that never duplicates rows or double-pays.
package commission

import (
	"errors"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// DefaultRate is the commission rate in percent applied to a delivered
// order's value. Fixed for now; a per-vendor rate table is a possible
// future extension.
const DefaultRate = 5.0

// ErrCommissionIsNotConstructed is returned when a Commission was not created
// via NewCommission or RestoreCommission.
var ErrCommissionIsNotConstructed = errors.New(
	"Commission must be created via NewCommission or RestoreCommission")

// PaymentStatus is the payment lifecycle of a commission.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means the commission is owed but not yet paid out.
	PaymentPending

	// PaymentPaid means the commission was paid out.
	PaymentPaid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "unknown",
		PaymentPending: "pending",
		PaymentPaid:    "paid",
	}
}

// Validate checks that the PaymentStatus is pending or paid.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the wire name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ParsePaymentStatus converts a wire name back to a PaymentStatus. Matching
// is exact; only "pending" and "paid" are accepted.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s && status != PaymentUnknown {
			return status, nil
		}
	}

	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Commission is the payable owed to a sales representative for a delivered
// order. commissionValue = orderValue * rate / 100, fixed at creation.
// Commissions are keyed uniquely by order and never deleted.
type Commission struct {
	orderID         kernel.UUID
	salesRepID      kernel.UUID
	orderValue      kernel.Money
	rate            float64
	commissionValue kernel.Money
	paymentStatus   PaymentStatus
	paidAt          *time.Time

	guard guard.ConstructorGuard
}

// NewCommission derives a pending commission from an order's value at
// DefaultRate.
func NewCommission(orderID, salesRepID kernel.UUID, orderValue kernel.Money) (*Commission, error) {
	if err := errors.Join(
		orderID.Validate(),
		salesRepID.Validate(),
		orderValue.Validate(),
	); err != nil {
		return nil, err
	}

	return &Commission{
		orderID:         orderID,
		salesRepID:      salesRepID,
		orderValue:      orderValue,
		rate:            DefaultRate,
		commissionValue: orderValue.Percent(DefaultRate),
		paymentStatus:   PaymentPending,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreCommission reconstructs a commission from persistence.
func RestoreCommission(
	orderID, salesRepID kernel.UUID,
	orderValue kernel.Money,
	rate float64,
	commissionValue kernel.Money,
	paymentStatus PaymentStatus,
	paidAt *time.Time,
) (*Commission, error) {
	if err := errors.Join(
		orderID.Validate(),
		salesRepID.Validate(),
		orderValue.Validate(),
		commissionValue.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return &Commission{
		orderID:         orderID,
		salesRepID:      salesRepID,
		orderValue:      orderValue,
		rate:            rate,
		commissionValue: commissionValue,
		paymentStatus:   paymentStatus,
		paidAt:          paidAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Commission was created through a constructor.
func (c *Commission) Validate() error {
	if c == nil {
		return ErrCommissionIsNotConstructed
	}
	return c.guard.Validate(ErrCommissionIsNotConstructed)
}

// OrderID returns the order the commission derives from.
func (c *Commission) OrderID() kernel.UUID {
	return c.orderID
}

// SalesRepID returns the sales representative owed the commission.
func (c *Commission) SalesRepID() kernel.UUID {
	return c.salesRepID
}

// OrderValue returns the order value the commission was computed from.
func (c *Commission) OrderValue() kernel.Money {
	return c.orderValue
}

// Rate returns the commission rate in percent.
func (c *Commission) Rate() float64 {
	return c.rate
}

// CommissionValue returns the derived payable amount.
func (c *Commission) CommissionValue() kernel.Money {
	return c.commissionValue
}

// PaymentStatus returns the payment lifecycle state.
func (c *Commission) PaymentStatus() PaymentStatus {
	return c.paymentStatus
}

// PaidAt returns when the commission was paid, nil while pending.
func (c *Commission) PaidAt() *time.Time {
	return c.paidAt
}

// MarkPaid sets the commission to paid with a fresh payment time. Calling it
// on an already-paid commission refreshes paidAt but changes nothing else, so
// repeated payment actions stay idempotent in value.
func (c *Commission) MarkPaid(now time.Time) {
	c.paymentStatus = PaymentPaid
	c.paidAt = &now
}
