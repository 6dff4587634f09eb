package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"atelier/internal/core/domain/model/checklist"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

// ChecklistSnapshot is a read-only copy of the four production stage flags,
// returned to the caller when an order enters production.
type ChecklistSnapshot struct {
	Cut          bool
	Sewing       bool
	Finishing    bool
	QualityCheck bool
}

// AdvanceProductionResult reports the outcome of a production transition.
// ElapsedMinutes is populated only when production finished; Checklist is
// populated only when production started.
type AdvanceProductionResult struct {
	Status         order.Status
	ElapsedMinutes int
	Checklist      *ChecklistSnapshot
}

// AdvanceProductionCommandHandler processes production pipeline transitions:
// approved -> in_production, in_production -> finished, and the regression
// in_production -> approved. The order row is locked for the duration of the
// transaction and the caller's expected status is compared against the
// persisted one, so a stale caller loses with a concurrency conflict instead
// of silently overwriting someone else's transition.
//
// Example:
//
//	handler := NewAdvanceProductionCommandHandler(uowFactory, auditLog, logger)
//	cmd, _ := NewAdvanceProductionCommand(
//	    orderID, workerID, actor.RoleProduction,
//	    order.StatusInProduction, order.StatusFinished, "",
//	)
//	result, err := handler.Handle(ctx, cmd)
//	if err == nil {
//	    log.Printf("Finished in %d minutes", result.ElapsedMinutes)
//	}
type AdvanceProductionCommandHandler struct {
	uowFactory ProductionUoWFactory
	auditLog   ports.AuditLog
	logger     *slog.Logger
}

// NewAdvanceProductionCommandHandler creates a handler for production
// pipeline transitions.
func NewAdvanceProductionCommandHandler(
	uowFactory ProductionUoWFactory,
	auditLog ports.AuditLog,
	logger *slog.Logger,
) AdvanceProductionCommandHandler {
	return AdvanceProductionCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
		logger:     logger,
	}
}

// Handle processes the advance production command.
// Only production staff and managers may drive the pipeline. The requested
// (from, to) pair must be one of the three production steps, and the order's
// persisted status must still equal the caller's expected status.
func (h AdvanceProductionCommandHandler) Handle(
	ctx context.Context, command AdvanceProductionCommand,
) (AdvanceProductionResult, error) {
	if err := command.Validate(); err != nil {
		return AdvanceProductionResult{}, err
	}

	if !command.ActorRole().IsProductionStaff() {
		return AdvanceProductionResult{}, errs.NewOperationForbiddenError(
			"advance production", command.ActorRole().String(),
		)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvanceProductionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	anOrder, err := ordersRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return AdvanceProductionResult{}, err
	}

	if anOrder.Status() != command.FromStatus() {
		return AdvanceProductionResult{}, errs.NewConcurrencyConflictError(
			"status", command.FromStatus().String(), anOrder.Status().String(),
		)
	}

	now := time.Now().UTC()
	result := AdvanceProductionResult{}

	switch {
	case command.FromStatus() == order.StatusApproved && command.ToStatus() == order.StatusInProduction:
		result, err = h.startProduction(ctx, uow, anOrder, command, now)
	case command.FromStatus() == order.StatusInProduction && command.ToStatus() == order.StatusFinished:
		result, err = h.finishProduction(ctx, uow, anOrder, command, now)
	case command.FromStatus() == order.StatusInProduction && command.ToStatus() == order.StatusApproved:
		result, err = h.returnToQueue(ctx, uow, anOrder)
	default:
		err = errs.NewInvalidTransitionError(
			command.FromStatus().String(), command.ToStatus().String(),
		)
	}
	if err != nil {
		return AdvanceProductionResult{}, err
	}

	entry, err := order.NewHistoryEntry(
		anOrder.ID(), anOrder.Status(), command.ActorID(), command.Note(), now,
	)
	if err != nil {
		return AdvanceProductionResult{}, err
	}

	if err = ordersRepo.Update(ctx, anOrder); err != nil {
		return AdvanceProductionResult{}, err
	}

	if err = ordersRepo.AppendHistory(ctx, entry); err != nil {
		return AdvanceProductionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceProductionResult{}, err
	}

	recordAudit(ctx, h.auditLog, h.logger, ports.AuditEntry{
		Operation: "advance_production",
		OrderID:   command.OrderID().String(),
		ActorID:   command.ActorID().String(),
		ActorRole: command.ActorRole().String(),
		Detail:    fmt.Sprintf("%s -> %s", command.FromStatus(), command.ToStatus()),
		At:        now,
	})

	return result, nil
}

// startProduction moves an approved order onto the floor. The checklist is
// created on first entry and re-armed with cleared flags on re-entry after a
// regression.
func (h AdvanceProductionCommandHandler) startProduction(
	ctx context.Context,
	uow ProductionUoW,
	anOrder *order.Order,
	command AdvanceProductionCommand,
	now time.Time,
) (AdvanceProductionResult, error) {
	checklistRepo := uow.ChecklistRepository()

	cl, err := checklistRepo.GetByOrder(ctx, anOrder.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		cl, err = checklist.NewChecklist(anOrder.ID(), command.ActorID(), now)
		if err != nil {
			return AdvanceProductionResult{}, err
		}
		if err = checklistRepo.Add(ctx, cl); err != nil {
			return AdvanceProductionResult{}, err
		}
	case err != nil:
		return AdvanceProductionResult{}, err
	default:
		if err = cl.Begin(command.ActorID(), now); err != nil {
			return AdvanceProductionResult{}, err
		}
		if err = checklistRepo.Update(ctx, cl); err != nil {
			return AdvanceProductionResult{}, err
		}
	}

	if err = anOrder.StartProduction(command.ActorID(), now); err != nil {
		return AdvanceProductionResult{}, err
	}

	snapshot, err := snapshotChecklist(cl)
	if err != nil {
		return AdvanceProductionResult{}, err
	}

	return AdvanceProductionResult{
		Status:    anOrder.Status(),
		Checklist: snapshot,
	}, nil
}

// finishProduction completes a production run. The checklist must have all
// four stages done; the elapsed floor time is reported back in whole minutes.
func (h AdvanceProductionCommandHandler) finishProduction(
	ctx context.Context,
	uow ProductionUoW,
	anOrder *order.Order,
	command AdvanceProductionCommand,
	now time.Time,
) (AdvanceProductionResult, error) {
	checklistRepo := uow.ChecklistRepository()

	cl, err := checklistRepo.GetByOrder(ctx, anOrder.ID())
	if err != nil {
		return AdvanceProductionResult{}, err
	}

	if err = cl.Finish(now); err != nil {
		return AdvanceProductionResult{}, err
	}

	if err = checklistRepo.Update(ctx, cl); err != nil {
		return AdvanceProductionResult{}, err
	}

	if err = anOrder.FinishProduction(now); err != nil {
		return AdvanceProductionResult{}, err
	}

	minutes, err := anOrder.ProductionMinutes()
	if err != nil {
		return AdvanceProductionResult{}, err
	}

	return AdvanceProductionResult{
		Status:         anOrder.Status(),
		ElapsedMinutes: minutes,
	}, nil
}

// returnToQueue regresses an in-production order back to the approved queue.
// The checklist keeps its row but loses all progress.
func (h AdvanceProductionCommandHandler) returnToQueue(
	ctx context.Context,
	uow ProductionUoW,
	anOrder *order.Order,
) (AdvanceProductionResult, error) {
	checklistRepo := uow.ChecklistRepository()

	cl, err := checklistRepo.GetByOrder(ctx, anOrder.ID())
	if err != nil {
		return AdvanceProductionResult{}, err
	}

	cl.Reset()

	if err = checklistRepo.Update(ctx, cl); err != nil {
		return AdvanceProductionResult{}, err
	}

	if err = anOrder.ReturnToQueue(); err != nil {
		return AdvanceProductionResult{}, err
	}

	return AdvanceProductionResult{Status: anOrder.Status()}, nil
}

func snapshotChecklist(cl *checklist.Checklist) (*ChecklistSnapshot, error) {
	snapshot := &ChecklistSnapshot{}

	for stage, target := range map[checklist.Stage]*bool{
		checklist.StageCut:          &snapshot.Cut,
		checklist.StageSewing:       &snapshot.Sewing,
		checklist.StageFinishing:    &snapshot.Finishing,
		checklist.StageQualityCheck: &snapshot.QualityCheck,
	} {
		done, err := cl.Stage(stage)
		if err != nil {
			return nil, err
		}
		*target = done
	}

	return snapshot, nil
}
