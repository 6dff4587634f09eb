package commands

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
)

// RejectOrderCommandHandler processes order rejection requests.
// Rejection is only possible while the order is still a quote; once approved
// the order can only leave the pipeline through explicit cancellation rules.
//
// Example:
//
//	handler := NewRejectOrderCommandHandler(uowFactory, auditLog, logger)
//	cmd, _ := NewRejectOrderCommand(orderID, actorID, actor.RoleManager, "out of budget")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Rejection failed: %v", err)
//	}
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	auditLog   ports.AuditLog
	logger     *slog.Logger
}

// NewRejectOrderCommandHandler creates a handler for order rejection operations.
func NewRejectOrderCommandHandler(
	uowFactory OrderUoWFactory,
	auditLog ports.AuditLog,
	logger *slog.Logger,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
		logger:     logger,
	}
}

// Handle processes the reject order command.
// Only a manager or the sales rep owning the order may reject a quote.
// The rejection reason is stored on the cancellation history entry.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, command RejectOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	anOrder, err := ordersRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = anOrder.AuthorizeQuoteDecision("reject order", command.ActorRole(), command.ActorID()); err != nil {
		return err
	}

	if err = anOrder.Reject(); err != nil {
		return err
	}

	now := time.Now().UTC()
	entry, err := order.NewHistoryEntry(
		anOrder.ID(), anOrder.Status(), command.ActorID(), command.Reason(), now,
	)
	if err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, anOrder); err != nil {
		return err
	}

	if err = ordersRepo.AppendHistory(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.auditLog, h.logger, ports.AuditEntry{
		Operation: "reject_order",
		OrderID:   command.OrderID().String(),
		ActorID:   command.ActorID().String(),
		ActorRole: command.ActorRole().String(),
		Detail:    command.Reason(),
		At:        now,
	})

	return nil
}
