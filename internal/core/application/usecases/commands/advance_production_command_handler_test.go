package commands_test

import (
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/checklist"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func completeChecklist(t *testing.T, orderID kernel.UUID) *checklist.Checklist {
	t.Helper()

	started := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	responsible := kernel.NewUUID()

	cl, err := checklist.RestoreChecklist(
		orderID, true, true, true, true, &started, nil, &responsible,
	)
	require.NoError(t, err)

	return cl
}

func partialChecklist(t *testing.T, orderID kernel.UUID) *checklist.Checklist {
	t.Helper()

	started := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	responsible := kernel.NewUUID()

	cl, err := checklist.RestoreChecklist(
		orderID, true, true, false, false, &started, nil, &responsible,
	)
	require.NoError(t, err)

	return cl
}

func TestAdvanceProductionCommandHandler_Handle_StartProduction_CreatesChecklist(t *testing.T) {
	// Arrange
	ctx := t.Context()
	workerID := kernel.NewUUID()
	anOrder := restoredOrder(t, kernel.NewUUID(), order.StatusApproved)

	cmd, err := commands.NewAdvanceProductionCommand(
		anOrder.ID(), workerID, actor.RoleProduction,
		order.StatusApproved, order.StatusInProduction, "",
	)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("checklist", anOrder.ID().String())
	mockOrderRepo := new(MockOrderRepository)
	mockChecklistRepo := new(MockChecklistRepository)
	mockUoW := new(MockProductionUoW)
	mockFactory := new(MockProductionUoWFactory)

	var createdChecklist *checklist.Checklist
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("GetForUpdate", ctx, anOrder.ID()).Return(anOrder, nil).Once(),
		mockUoW.On("ChecklistRepository").Return(mockChecklistRepo).Once(),
		mockChecklistRepo.On("GetByOrder", ctx, anOrder.ID()).
			Return((*checklist.Checklist)(nil), notFound).Once(),
		mockChecklistRepo.On("Add", ctx, mock.MatchedBy(func(cl *checklist.Checklist) bool {
			createdChecklist = cl
			return true
		})).Return(nil).Once(),
		mockOrderRepo.On("Update", ctx, anOrder).Return(nil).Once(),
		mockOrderRepo.On("AppendHistory", ctx, mock.MatchedBy(func(entry order.HistoryEntry) bool {
			return entry.Status() == order.StatusInProduction
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAdvanceProductionCommandHandler(mockFactory, nil, testLogger())

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.StatusInProduction, result.Status)
	assert.Equal(t, order.StatusInProduction, anOrder.Status())
	require.NotNil(t, result.Checklist)
	assert.False(t, result.Checklist.Cut)
	assert.False(t, result.Checklist.Sewing)
	assert.False(t, result.Checklist.Finishing)
	assert.False(t, result.Checklist.QualityCheck)

	require.NotNil(t, createdChecklist)
	assert.True(t, createdChecklist.OrderID().IsEqual(anOrder.ID()))
	require.NotNil(t, createdChecklist.Responsible())
	assert.True(t, createdChecklist.Responsible().IsEqual(workerID))
	assert.False(t, createdChecklist.IsComplete())

	require.NotNil(t, anOrder.ProductionResponsible())
	assert.True(t, anOrder.ProductionResponsible().IsEqual(workerID))

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockChecklistRepo.AssertExpectations(t)
}

func TestAdvanceProductionCommandHandler_Handle_StartProduction_ReusesChecklistAfterRegression(t *testing.T) {
	// Arrange
	ctx := t.Context()
	workerID := kernel.NewUUID()
	anOrder := restoredOrder(t, kernel.NewUUID(), order.StatusApproved)

	existing, err := checklist.RestoreChecklist(anOrder.ID(), false, false, false, false, nil, nil, nil)
	require.NoError(t, err)

	cmd, err := commands.NewAdvanceProductionCommand(
		anOrder.ID(), workerID, actor.RoleProduction,
		order.StatusApproved, order.StatusInProduction, "second attempt",
	)
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockChecklistRepo := new(MockChecklistRepository)
	mockUoW := new(MockProductionUoW)
	mockFactory := new(MockProductionUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("GetForUpdate", ctx, anOrder.ID()).Return(anOrder, nil).Once(),
		mockUoW.On("ChecklistRepository").Return(mockChecklistRepo).Once(),
		mockChecklistRepo.On("GetByOrder", ctx, anOrder.ID()).Return(existing, nil).Once(),
		mockChecklistRepo.On("Update", ctx, existing).Return(nil).Once(),
		mockOrderRepo.On("Update", ctx, anOrder).Return(nil).Once(),
		mockOrderRepo.On("AppendHistory", ctx, mock.AnythingOfType("order.HistoryEntry")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAdvanceProductionCommandHandler(mockFactory, nil, testLogger())

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.StatusInProduction, result.Status)
	require.NotNil(t, existing.Responsible())
	assert.True(t, existing.Responsible().IsEqual(workerID))
	assert.NotNil(t, existing.StartedAt())
	mockChecklistRepo.AssertExpectations(t)
}

func TestAdvanceProductionCommandHandler_Handle_FinishProduction(t *testing.T) {
	// Arrange
	ctx := t.Context()
	workerID := kernel.NewUUID()
	anOrder := restoredOrder(t, kernel.NewUUID(), order.StatusInProduction)
	cl := completeChecklist(t, anOrder.ID())

	cmd, err := commands.NewAdvanceProductionCommand(
		anOrder.ID(), workerID, actor.RoleProduction,
		order.StatusInProduction, order.StatusFinished, "",
	)
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockChecklistRepo := new(MockChecklistRepository)
	mockUoW := new(MockProductionUoW)
	mockFactory := new(MockProductionUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("GetForUpdate", ctx, anOrder.ID()).Return(anOrder, nil).Once(),
		mockUoW.On("ChecklistRepository").Return(mockChecklistRepo).Once(),
		mockChecklistRepo.On("GetByOrder", ctx, anOrder.ID()).Return(cl, nil).Once(),
		mockChecklistRepo.On("Update", ctx, cl).Return(nil).Once(),
		mockOrderRepo.On("Update", ctx, anOrder).Return(nil).Once(),
		mockOrderRepo.On("AppendHistory", ctx, mock.MatchedBy(func(entry order.HistoryEntry) bool {
			return entry.Status() == order.StatusFinished
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAdvanceProductionCommandHandler(mockFactory, nil, testLogger())

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.StatusFinished, result.Status)
	assert.Equal(t, order.StatusFinished, anOrder.Status())
	assert.Positive(t, result.ElapsedMinutes)
	assert.NotNil(t, cl.FinishedAt())
	assert.NotNil(t, anOrder.ProductionFinishedAt())
	mockChecklistRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestAdvanceProductionCommandHandler_Handle_FinishProduction_IncompleteChecklist(t *testing.T) {
	// Arrange
	ctx := t.Context()
	anOrder := restoredOrder(t, kernel.NewUUID(), order.StatusInProduction)
	cl := partialChecklist(t, anOrder.ID())

	cmd, err := commands.NewAdvanceProductionCommand(
		anOrder.ID(), kernel.NewUUID(), actor.RoleProduction,
		order.StatusInProduction, order.StatusFinished, "",
	)
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockChecklistRepo := new(MockChecklistRepository)
	mockUoW := new(MockProductionUoW)
	mockFactory := new(MockProductionUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("GetForUpdate", ctx, anOrder.ID()).Return(anOrder, nil).Once(),
		mockUoW.On("ChecklistRepository").Return(mockChecklistRepo).Once(),
		mockChecklistRepo.On("GetByOrder", ctx, anOrder.ID()).Return(cl, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAdvanceProductionCommandHandler(mockFactory, nil, testLogger())

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, checklist.ErrChecklistIncomplete)
	assert.Equal(t, order.StatusInProduction, anOrder.Status())
	assert.Nil(t, cl.FinishedAt())
	mockUoW.AssertExpectations(t)
}

func TestAdvanceProductionCommandHandler_Handle_ReturnToQueue(t *testing.T) {
	// Arrange
	ctx := t.Context()
	anOrder := restoredOrder(t, kernel.NewUUID(), order.StatusInProduction)
	cl := partialChecklist(t, anOrder.ID())

	cmd, err := commands.NewAdvanceProductionCommand(
		anOrder.ID(), kernel.NewUUID(), actor.RoleManager,
		order.StatusInProduction, order.StatusApproved, "fabric defect, redo",
	)
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockChecklistRepo := new(MockChecklistRepository)
	mockUoW := new(MockProductionUoW)
	mockFactory := new(MockProductionUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("GetForUpdate", ctx, anOrder.ID()).Return(anOrder, nil).Once(),
		mockUoW.On("ChecklistRepository").Return(mockChecklistRepo).Once(),
		mockChecklistRepo.On("GetByOrder", ctx, anOrder.ID()).Return(cl, nil).Once(),
		mockChecklistRepo.On("Update", ctx, cl).Return(nil).Once(),
		mockOrderRepo.On("Update", ctx, anOrder).Return(nil).Once(),
		mockOrderRepo.On("AppendHistory", ctx, mock.MatchedBy(func(entry order.HistoryEntry) bool {
			return entry.Status() == order.StatusApproved && entry.Note() == "fabric defect, redo"
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAdvanceProductionCommandHandler(mockFactory, nil, testLogger())

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.StatusApproved, result.Status)
	assert.Equal(t, order.StatusApproved, anOrder.Status())

	// Checklist progress is wiped, the row survives
	done, err := cl.Stage(checklist.StageCut)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Nil(t, cl.Responsible())

	// Production bookkeeping is cleared for the next run
	assert.Nil(t, anOrder.ProductionStartedAt())
	assert.Nil(t, anOrder.ProductionResponsible())
	mockChecklistRepo.AssertExpectations(t)
}

func TestAdvanceProductionCommandHandler_Handle_StaleCallerLoses(t *testing.T) {
	// Arrange
	ctx := t.Context()
	// Another worker already moved the order into production
	anOrder := restoredOrder(t, kernel.NewUUID(), order.StatusInProduction)

	cmd, err := commands.NewAdvanceProductionCommand(
		anOrder.ID(), kernel.NewUUID(), actor.RoleProduction,
		order.StatusApproved, order.StatusInProduction, "",
	)
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockProductionUoW)
	mockFactory := new(MockProductionUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("GetForUpdate", ctx, anOrder.ID()).Return(anOrder, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAdvanceProductionCommandHandler(mockFactory, nil, testLogger())

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestAdvanceProductionCommandHandler_Handle_UnsupportedPair(t *testing.T) {
	// Arrange
	ctx := t.Context()
	anOrder := restoredOrder(t, kernel.NewUUID(), order.StatusFinished)

	// finished -> delivered is a lifecycle edge, but not a production step
	cmd, err := commands.NewAdvanceProductionCommand(
		anOrder.ID(), kernel.NewUUID(), actor.RoleProduction,
		order.StatusFinished, order.StatusDelivered, "",
	)
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockProductionUoW)
	mockFactory := new(MockProductionUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("GetForUpdate", ctx, anOrder.ID()).Return(anOrder, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAdvanceProductionCommandHandler(mockFactory, nil, testLogger())

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestAdvanceProductionCommandHandler_Handle_SalesRepForbidden(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAdvanceProductionCommand(
		kernel.NewUUID(), kernel.NewUUID(), actor.RoleSalesRep,
		order.StatusApproved, order.StatusInProduction, "",
	)
	require.NoError(t, err)

	mockFactory := new(MockProductionUoWFactory)
	handler := commands.NewAdvanceProductionCommandHandler(mockFactory, nil, testLogger())

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrOperationForbidden)
	mockFactory.AssertExpectations(t) // no transaction was even opened
}

func TestAdvanceProductionCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.AdvanceProductionCommand // zero value command

	mockFactory := new(MockProductionUoWFactory)
	handler := commands.NewAdvanceProductionCommandHandler(mockFactory, nil, testLogger())

	// Act
	_, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAdvanceProductionCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}
