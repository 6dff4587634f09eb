package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/commission"
	"atelier/internal/core/domain/services"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

// PayCommissionCommandHandler processes commission payouts.
// The commission row is derived from the delivered order on first payment and
// marked paid; repeated payments are idempotent. Payouts are bookkeeping, not
// lifecycle transitions, so no history entry is written.
//
// Example:
//
//	handler := NewPayCommissionCommandHandler(uowFactory, auditLog, logger)
//	cmd, _ := NewPayCommissionCommand(orderID, managerID, actor.RoleManager)
//	paid, err := handler.Handle(ctx, cmd)
//	if err == nil {
//	    log.Printf("Paid %s to %s", paid.CommissionValue(), paid.SalesRepID())
//	}
type PayCommissionCommandHandler struct {
	uowFactory CommissionUoWFactory
	auditLog   ports.AuditLog
	logger     *slog.Logger
}

// NewPayCommissionCommandHandler creates a handler for commission payouts.
func NewPayCommissionCommandHandler(
	uowFactory CommissionUoWFactory,
	auditLog ports.AuditLog,
	logger *slog.Logger,
) PayCommissionCommandHandler {
	return PayCommissionCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
		logger:     logger,
	}
}

// Handle processes the pay commission command.
// Only managers may pay commissions, and only for delivered orders.
// Returns the paid commission.
func (h PayCommissionCommandHandler) Handle(
	ctx context.Context, command PayCommissionCommand,
) (*commission.Commission, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	if command.ActorRole() != actor.RoleManager {
		return nil, errs.NewOperationForbiddenError("pay commission", command.ActorRole().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	anOrder, err := uow.OrderRepository().GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	commissionsRepo := uow.CommissionRepository()
	now := time.Now().UTC()

	aCommission, err := commissionsRepo.GetByOrder(ctx, command.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		aCommission, err = services.NewCommissionCalculator().Calculate(anOrder)
		if err != nil {
			return nil, err
		}
		aCommission.MarkPaid(now)
		if err = commissionsRepo.Add(ctx, aCommission); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		aCommission.MarkPaid(now)
		if err = commissionsRepo.Update(ctx, aCommission); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	recordAudit(ctx, h.auditLog, h.logger, ports.AuditEntry{
		Operation: "pay_commission",
		OrderID:   command.OrderID().String(),
		ActorID:   command.ActorID().String(),
		ActorRole: command.ActorRole().String(),
		Detail:    fmt.Sprintf("amount=%s rate=%.1f%%", aCommission.CommissionValue(), aCommission.Rate()),
		At:        now,
	})

	return aCommission, nil
}
