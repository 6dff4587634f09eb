// Package commissionrepo provides data transfer objects and mapping functions
// for sales commission persistence. Commissions are keyed uniquely per order;
// rows are inserted at first payment and updated on repeat payments.
package commissionrepo

import (
	"time"

	"atelier/internal/core/domain/model/commission"
	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CommissionDTO represents the database structure for persisting commissions.
// Value and rate are denormalized at creation so later rate changes never
// rewrite an already-derived payable.
type CommissionDTO struct {
	OrderID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	SalesRepID           uuid.UUID `gorm:"type:uuid;index"`
	OrderValueCents      int64
	Rate                 float64
	CommissionValueCents int64
	PaymentStatus        string `gorm:"index"`
	PaidAt               *time.Time
}

// TableName specifies the database table name for commissions.
func (CommissionDTO) TableName() string {
	return "commissions"
}

// fromDomain converts a commission aggregate to its database representation.
func fromDomain(aggregate *commission.Commission) CommissionDTO {
	return CommissionDTO{
		OrderID:              aggregate.OrderID().Bytes(),
		SalesRepID:           aggregate.SalesRepID().Bytes(),
		OrderValueCents:      aggregate.OrderValue().Cents(),
		Rate:                 aggregate.Rate(),
		CommissionValueCents: aggregate.CommissionValue().Cents(),
		PaymentStatus:        aggregate.PaymentStatus().String(),
		PaidAt:               aggregate.PaidAt(),
	}
}

// toDomain converts a database DTO to a commission aggregate.
func toDomain(dto CommissionDTO) (*commission.Commission, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	salesRepID, err := kernel.UUIDFromBytes(dto.SalesRepID[:])
	if err != nil {
		return nil, err
	}

	orderValue, err := kernel.NewMoney(dto.OrderValueCents)
	if err != nil {
		return nil, err
	}

	commissionValue, err := kernel.NewMoney(dto.CommissionValueCents)
	if err != nil {
		return nil, err
	}

	status, err := commission.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return commission.RestoreCommission(
		orderID, salesRepID, orderValue, dto.Rate, commissionValue, status, dto.PaidAt,
	)
}
