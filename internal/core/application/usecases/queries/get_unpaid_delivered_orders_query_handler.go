package queries

import (
	"context"
	"database/sql"
	"time"

	"atelier/internal/core/domain/model/commission"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnpaidDeliveredOrdersQueryHandler reads delivered orders that still owe
// their sales rep a commission. An order is unpaid when no commission row
// exists yet or when the row is still pending.
//
// Example:
//
//	handler := NewGetUnpaidDeliveredOrdersQueryHandler(db)
//	rows, err := handler.Handle(ctx, NewGetUnpaidDeliveredOrdersQuery())
type GetUnpaidDeliveredOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnpaidDeliveredOrdersQueryHandler creates a handler for unpaid
// delivered order queries.
func NewGetUnpaidDeliveredOrdersQueryHandler(db *gorm.DB) GetUnpaidDeliveredOrdersQueryHandler {
	return GetUnpaidDeliveredOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back oldest delivery first, so the
// longest-owed commissions top the report.
func (h GetUnpaidDeliveredOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnpaidDeliveredOrdersQuery,
) ([]GetUnpaidDeliveredOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	results := make([]GetUnpaidDeliveredOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.owner_sales_rep_id,
			o.final_value_cents,
			o.delivered_at,
			c.commission_value_cents
		FROM orders o
		LEFT JOIN commissions c ON c.order_id = o.id
		WHERE o.status = ?
		  AND (c.order_id IS NULL OR c.payment_status <> ?)
		ORDER BY o.delivered_at, o.id
	`, order.StatusDelivered.String(), commission.PaymentPaid.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id              uuid.UUID
			salesRepID      uuid.UUID
			valueCents      int64
			deliveredAt     time.Time
			commissionCents sql.NullInt64
		)

		if err = rows.Scan(&id, &salesRepID, &valueCents, &deliveredAt, &commissionCents); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		repID, repErr := kernel.UUIDFromBytes(salesRepID[:])
		if repErr != nil {
			return nil, repErr
		}

		value, valueErr := kernel.NewMoney(valueCents)
		if valueErr != nil {
			return nil, valueErr
		}

		due := value.Percent(commission.DefaultRate)
		if commissionCents.Valid {
			persisted, dueErr := kernel.NewMoney(commissionCents.Int64)
			if dueErr != nil {
				return nil, dueErr
			}
			due = persisted
		}

		results = append(results, GetUnpaidDeliveredOrdersQueryResponse{
			ID:            orderID,
			SalesRepID:    repID,
			FinalValue:    value,
			CommissionDue: due,
			DeliveredAt:   deliveredAt.UTC(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
