package queries

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads an order's transition history from the
// database. The order itself is checked first so a request for a nonexistent
// order fails with not-found instead of returning an empty history.
//
// Example:
//
//	handler := NewGetOrderHistoryQueryHandler(db)
//	query, _ := NewGetOrderHistoryQuery(orderID)
//	entries, err := handler.Handle(ctx, query)
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query. Entries come back oldest first; an order that
// has never left quote status yields an empty, non-nil slice.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int
	err := h.db.WithContext(ctx).Raw(
		`SELECT 1 FROM orders WHERE id = ?`, query.OrderID().Bytes(),
	).Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	entries := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			actor_id,
			note,
			created_at
		FROM status_history
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			statusStr string
			actorID   uuid.UUID
			note      string
			createdAt time.Time
		)

		if err = rows.Scan(&statusStr, &actorID, &note, &createdAt); err != nil {
			return nil, err
		}

		status, statusErr := order.ParseStatus(statusStr)
		if statusErr != nil {
			return nil, statusErr
		}

		actor, actorErr := kernel.UUIDFromBytes(actorID[:])
		if actorErr != nil {
			return nil, actorErr
		}

		entries = append(entries, GetOrderHistoryQueryResponse{
			Status:    status,
			ActorID:   actor,
			Note:      note,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
