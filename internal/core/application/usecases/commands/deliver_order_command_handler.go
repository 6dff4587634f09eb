package commands

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

// DeliverOrderCommandHandler processes delivery requests for finished orders.
// Delivery is the last forward transition; once delivered the order is
// terminal and its sales rep commission becomes payable.
//
// Example:
//
//	handler := NewDeliverOrderCommandHandler(uowFactory, auditLog, logger)
//	cmd, _ := NewDeliverOrderCommand(orderID, actorID, actor.RoleManager, "")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Delivery failed: %v", err)
//	}
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	auditLog   ports.AuditLog
	logger     *slog.Logger
}

// NewDeliverOrderCommandHandler creates a handler for order delivery
// operations.
func NewDeliverOrderCommandHandler(
	uowFactory OrderUoWFactory,
	auditLog ports.AuditLog,
	logger *slog.Logger,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
		logger:     logger,
	}
}

// Handle processes the deliver order command.
// Only production staff and managers may record a delivery, and only for an
// order whose production has finished.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, command DeliverOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if !command.ActorRole().IsProductionStaff() {
		return errs.NewOperationForbiddenError("deliver order", command.ActorRole().String())
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

	now := time.Now().UTC()
	if err = anOrder.Deliver(now); err != nil {
		return err
	}

	entry, err := order.NewHistoryEntry(
		anOrder.ID(), anOrder.Status(), command.ActorID(), command.Note(), now,
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
		Operation: "deliver_order",
		OrderID:   command.OrderID().String(),
		ActorID:   command.ActorID().String(),
		ActorRole: command.ActorRole().String(),
		Detail:    command.Note(),
		At:        now,
	})

	return nil
}
