package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

// SetChecklistStageResult reports the checklist state after the update.
type SetChecklistStageResult struct {
	Checklist ChecklistSnapshot
	Complete  bool
}

// SetChecklistStageCommandHandler processes checklist stage updates.
// The order row is locked while the flag is flipped so a stage toggle cannot
// interleave with a production transition on the same order. Stage updates
// are working notes, not lifecycle transitions, so no history entry is
// written.
//
// Example:
//
//	handler := NewSetChecklistStageCommandHandler(uowFactory, auditLog, logger)
//	cmd, _ := NewSetChecklistStageCommand(orderID, workerID, actor.RoleProduction, checklist.StageCut, true)
//	result, err := handler.Handle(ctx, cmd)
//	if err == nil && result.Complete {
//	    log.Println("All stages done, order can be finished")
//	}
type SetChecklistStageCommandHandler struct {
	uowFactory ProductionUoWFactory
	auditLog   ports.AuditLog
	logger     *slog.Logger
}

// NewSetChecklistStageCommandHandler creates a handler for checklist stage
// updates.
func NewSetChecklistStageCommandHandler(
	uowFactory ProductionUoWFactory,
	auditLog ports.AuditLog,
	logger *slog.Logger,
) SetChecklistStageCommandHandler {
	return SetChecklistStageCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
		logger:     logger,
	}
}

// Handle processes the set checklist stage command.
// Only production staff and managers may update a checklist, and only while
// the order is in production.
func (h SetChecklistStageCommandHandler) Handle(
	ctx context.Context, command SetChecklistStageCommand,
) (SetChecklistStageResult, error) {
	if err := command.Validate(); err != nil {
		return SetChecklistStageResult{}, err
	}

	if !command.ActorRole().IsProductionStaff() {
		return SetChecklistStageResult{}, errs.NewOperationForbiddenError(
			"set checklist stage", command.ActorRole().String(),
		)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SetChecklistStageResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	anOrder, err := uow.OrderRepository().GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return SetChecklistStageResult{}, err
	}

	if anOrder.Status() != order.StatusInProduction {
		return SetChecklistStageResult{}, errs.NewInvalidStateError(
			"set checklist stage", anOrder.Status().String(),
		)
	}

	checklistRepo := uow.ChecklistRepository()

	cl, err := checklistRepo.GetByOrder(ctx, command.OrderID())
	if err != nil {
		return SetChecklistStageResult{}, err
	}

	if err = cl.SetStage(command.Stage(), command.Done()); err != nil {
		return SetChecklistStageResult{}, err
	}

	if err = checklistRepo.Update(ctx, cl); err != nil {
		return SetChecklistStageResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SetChecklistStageResult{}, err
	}

	recordAudit(ctx, h.auditLog, h.logger, ports.AuditEntry{
		Operation: "set_checklist_stage",
		OrderID:   command.OrderID().String(),
		ActorID:   command.ActorID().String(),
		ActorRole: command.ActorRole().String(),
		Detail:    fmt.Sprintf("%s=%t", command.Stage(), command.Done()),
		At:        time.Now().UTC(),
	})

	snapshot, err := snapshotChecklist(cl)
	if err != nil {
		return SetChecklistStageResult{}, err
	}

	return SetChecklistStageResult{
		Checklist: *snapshot,
		Complete:  cl.IsComplete(),
	}, nil
}
