package kernel

import (
	"fmt"
	"math"

	"atelier/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount in
// integer cents. Order values and commission values are Money; keeping cents
// as the unit avoids floating point drift in commission math.
//
// Construct instances with NewMoney or MoneyFromFloat. The zero value is a
// valid zero amount.
type Money struct {
	cents int64
}

// NewMoney creates a Money from an amount in cents.
// Negative amounts are rejected.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%d cents is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// MoneyFromFloat creates a Money from a decimal currency amount,
// rounding to the nearest cent.
func MoneyFromFloat(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%.2f is negative", amount),
		)
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in currency units.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Percent returns the given percentage of the amount, rounded to the nearest
// cent. Used for commission derivation.
func (m Money) Percent(rate float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * rate / 100))}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual reports whether two amounts are equal.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Float64())
}

// Validate reports whether the amount is non-negative. A restored row can
// in principle carry a negative value, so persistence rehydration checks this.
func (m Money) Validate() error {
	if m.cents < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%d cents is negative", m.cents),
		)
	}
	return nil
}
