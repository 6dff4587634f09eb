// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate and its append-only status history, converting between domain
// entities and database rows.
package orderrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lifecycle timestamps are nullable; each is set the first time the order
// reaches the corresponding status.
type OrderDTO struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerSalesRepID         uuid.UUID `gorm:"type:uuid;index"`
	FinalValueCents         int64
	Status                  string `gorm:"index"`
	ApprovedAt              *time.Time
	ProductionStartedAt     *time.Time
	ProductionFinishedAt    *time.Time
	DeliveredAt             *time.Time
	ProductionResponsibleID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryEntryDTO represents one row of the append-only status history table.
// Rows are only ever inserted; the surrogate key exists for stable ordering.
type HistoryEntryDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    string
	ActorID   uuid.UUID `gorm:"type:uuid"`
	Note      string
	CreatedAt time.Time
}

// TableName specifies the database table name for history entries.
func (HistoryEntryDTO) TableName() string {
	return "status_history"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var responsibleID *uuid.UUID
	if id := aggregate.ProductionResponsible(); id != nil {
		raw := id.Bytes()
		responsibleID = &raw
	}

	return OrderDTO{
		ID:                      aggregate.ID().Bytes(),
		OwnerSalesRepID:         aggregate.OwnerSalesRepID().Bytes(),
		FinalValueCents:         aggregate.FinalValue().Cents(),
		Status:                  aggregate.Status().String(),
		ApprovedAt:              aggregate.ApprovedAt(),
		ProductionStartedAt:     aggregate.ProductionStartedAt(),
		ProductionFinishedAt:    aggregate.ProductionFinishedAt(),
		DeliveredAt:             aggregate.DeliveredAt(),
		ProductionResponsibleID: responsibleID,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerSalesRepID[:])
	if err != nil {
		return nil, err
	}

	value, err := kernel.NewMoney(dto.FinalValueCents)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var responsibleID *kernel.UUID
	if dto.ProductionResponsibleID != nil {
		rID, respErr := kernel.UUIDFromBytes((*dto.ProductionResponsibleID)[:])
		if respErr != nil {
			return nil, respErr
		}

		responsibleID = &rID
	}

	return order.RestoreOrder(
		id, ownerID, value, status,
		dto.ApprovedAt, dto.ProductionStartedAt, dto.ProductionFinishedAt, dto.DeliveredAt,
		responsibleID,
	)
}

// historyFromDomain converts a history entry to its database representation.
func historyFromDomain(entry order.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		OrderID:   entry.OrderID().Bytes(),
		Status:    entry.Status().String(),
		ActorID:   entry.ActorID().Bytes(),
		Note:      entry.Note(),
		CreatedAt: entry.CreatedAt(),
	}
}

// historyToDomain converts a database row to a history entry.
func historyToDomain(dto HistoryEntryDTO) (order.HistoryEntry, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return order.HistoryEntry{}, err
	}

	return order.RestoreHistoryEntry(orderID, status, actorID, dto.Note, dto.CreatedAt)
}
