package commands

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
)

// ApproveOrderCommandHandler processes order approval requests.
// Loads the order under a row lock, authorizes the actor, applies the
// quote -> approved transition and records the history entry, all within
// a single transaction.
//
// Example:
//
//	handler := NewApproveOrderCommandHandler(uowFactory, auditLog, logger)
//	cmd, _ := NewApproveOrderCommand(orderID, actorID, actor.RoleSalesRep, "")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Approval failed: %v", err)
//	}
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	auditLog   ports.AuditLog
	logger     *slog.Logger
}

// NewApproveOrderCommandHandler creates a handler for order approval operations.
func NewApproveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	auditLog ports.AuditLog,
	logger *slog.Logger,
) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
		logger:     logger,
	}
}

// Handle processes the approve order command.
// Only a manager or the sales rep owning the order may approve, and only
// while the order is still a quote. On success the order carries its
// approval timestamp and a history entry is appended.
func (h ApproveOrderCommandHandler) Handle(ctx context.Context, command ApproveOrderCommand) error {
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

	if err = anOrder.AuthorizeQuoteDecision("approve order", command.ActorRole(), command.ActorID()); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = anOrder.Approve(now); err != nil {
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
		Operation: "approve_order",
		OrderID:   command.OrderID().String(),
		ActorID:   command.ActorID().String(),
		ActorRole: command.ActorRole().String(),
		Detail:    command.Note(),
		At:        now,
	})

	return nil
}
