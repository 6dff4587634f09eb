package queries

import (
	"context"
	"database/sql"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersInProductionQueryHandler reads the production floor state from the
// database, joining orders against their checklists. The checklist join is a
// left join: an in-production order always has one, but the projection stays
// robust if the row is missing.
//
// Example:
//
//	handler := NewGetOrdersInProductionQueryHandler(db)
//	rows, err := handler.Handle(ctx, NewGetOrdersInProductionQuery())
type GetOrdersInProductionQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersInProductionQueryHandler creates a handler for production floor
// queries.
func NewGetOrdersInProductionQueryHandler(db *gorm.DB) GetOrdersInProductionQueryHandler {
	return GetOrdersInProductionQueryHandler{db: db}
}

// Handle executes the query. Orders come back oldest production start first.
func (h GetOrdersInProductionQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersInProductionQuery,
) ([]GetOrdersInProductionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	results := make([]GetOrdersInProductionQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.final_value_cents,
			o.production_started_at,
			o.production_responsible_id,
			COALESCE(c.cut, FALSE),
			COALESCE(c.sewing, FALSE),
			COALESCE(c.finishing, FALSE),
			COALESCE(c.quality_check, FALSE)
		FROM orders o
		LEFT JOIN production_checklists c ON c.order_id = o.id
		WHERE o.status = ?
		ORDER BY o.production_started_at, o.id
	`, order.StatusInProduction.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uuid.UUID
			valueCents    int64
			startedAt     sql.NullTime
			responsibleID uuid.NullUUID
			resp          GetOrdersInProductionQueryResponse
		)

		if err = rows.Scan(
			&id, &valueCents, &startedAt, &responsibleID,
			&resp.Cut, &resp.Sewing, &resp.Finishing, &resp.QualityCheck,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		value, valueErr := kernel.NewMoney(valueCents)
		if valueErr != nil {
			return nil, valueErr
		}
		resp.FinalValue = value

		if startedAt.Valid {
			started := startedAt.Time.UTC()
			resp.StartedAt = &started
		}

		if responsibleID.Valid {
			rID, respErr := kernel.UUIDFromBytes(responsibleID.UUID[:])
			if respErr != nil {
				return nil, respErr
			}
			resp.ResponsibleID = &rID
		}

		results = append(results, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
