// Package checklistrepo provides data transfer objects and mapping functions
// for production checklist persistence. Each order has at most one checklist
// row; the row is created on first entry into production and kept across
// regressions.
package checklistrepo

import (
	"time"

	"atelier/internal/core/domain/model/checklist"
	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ChecklistDTO represents the database structure for persisting checklists.
// The order ID is the primary key: one checklist per order.
type ChecklistDTO struct {
	OrderID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Cut           bool
	Sewing        bool
	Finishing     bool
	QualityCheck  bool
	StartedAt     *time.Time
	FinishedAt    *time.Time
	ResponsibleID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for checklists.
func (ChecklistDTO) TableName() string {
	return "production_checklists"
}

// fromDomain converts a checklist aggregate to its database representation.
func fromDomain(aggregate *checklist.Checklist) ChecklistDTO {
	var responsibleID *uuid.UUID
	if id := aggregate.Responsible(); id != nil {
		raw := id.Bytes()
		responsibleID = &raw
	}

	dto := ChecklistDTO{
		OrderID:       aggregate.OrderID().Bytes(),
		StartedAt:     aggregate.StartedAt(),
		FinishedAt:    aggregate.FinishedAt(),
		ResponsibleID: responsibleID,
	}

	// Stage reads cannot fail for the four known stages.
	dto.Cut, _ = aggregate.Stage(checklist.StageCut)
	dto.Sewing, _ = aggregate.Stage(checklist.StageSewing)
	dto.Finishing, _ = aggregate.Stage(checklist.StageFinishing)
	dto.QualityCheck, _ = aggregate.Stage(checklist.StageQualityCheck)

	return dto
}

// toDomain converts a database DTO to a checklist aggregate.
func toDomain(dto ChecklistDTO) (*checklist.Checklist, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var responsibleID *kernel.UUID
	if dto.ResponsibleID != nil {
		rID, respErr := kernel.UUIDFromBytes((*dto.ResponsibleID)[:])
		if respErr != nil {
			return nil, respErr
		}

		responsibleID = &rID
	}

	return checklist.RestoreChecklist(
		orderID,
		dto.Cut, dto.Sewing, dto.Finishing, dto.QualityCheck,
		dto.StartedAt, dto.FinishedAt,
		responsibleID,
	)
}
