package commands_test

import (
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/commission"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPayCommissionCommandHandler_Handle_FirstPayment(t *testing.T) {
	// Arrange
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	anOrder := restoredOrder(t, ownerID, order.StatusDelivered)

	cmd, err := commands.NewPayCommissionCommand(anOrder.ID(), kernel.NewUUID(), actor.RoleManager)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("commission", anOrder.ID().String())
	mockOrderRepo := new(MockOrderRepository)
	mockCommissionRepo := new(MockCommissionRepository)
	mockUoW := new(MockCommissionUoW)
	mockFactory := new(MockCommissionUoWFactory)

	var createdCommission *commission.Commission
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("GetForUpdate", ctx, anOrder.ID()).Return(anOrder, nil).Once(),
		mockUoW.On("CommissionRepository").Return(mockCommissionRepo).Once(),
		mockCommissionRepo.On("GetByOrder", ctx, anOrder.ID()).
			Return((*commission.Commission)(nil), notFound).Once(),
		mockCommissionRepo.On("Add", ctx, mock.MatchedBy(func(c *commission.Commission) bool {
			createdCommission = c
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewPayCommissionCommandHandler(mockFactory, nil, testLogger())

	// Act
	paid, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, paid)
	require.NotNil(t, createdCommission)
	assert.Same(t, createdCommission, paid)

	assert.True(t, paid.OrderID().IsEqual(anOrder.ID()))
	assert.True(t, paid.SalesRepID().IsEqual(ownerID))
	assert.Equal(t, commission.PaymentPaid, paid.PaymentStatus())
	assert.NotNil(t, paid.PaidAt())

	// 5% of 1200.00 is 60.00
	assert.Equal(t, int64(6_000), paid.CommissionValue().Cents())
	assert.InDelta(t, commission.DefaultRate, paid.Rate(), 0.001)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockCommissionRepo.AssertExpectations(t)
}

func TestPayCommissionCommandHandler_Handle_RepeatedPaymentIsIdempotent(t *testing.T) {
	// Arrange
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	anOrder := restoredOrder(t, ownerID, order.StatusDelivered)

	existing, err := commission.NewCommission(anOrder.ID(), ownerID, anOrder.FinalValue())
	require.NoError(t, err)

	cmd, err := commands.NewPayCommissionCommand(anOrder.ID(), kernel.NewUUID(), actor.RoleManager)
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockCommissionRepo := new(MockCommissionRepository)
	mockUoW := new(MockCommissionUoW)
	mockFactory := new(MockCommissionUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("GetForUpdate", ctx, anOrder.ID()).Return(anOrder, nil).Once(),
		mockUoW.On("CommissionRepository").Return(mockCommissionRepo).Once(),
		mockCommissionRepo.On("GetByOrder", ctx, anOrder.ID()).Return(existing, nil).Once(),
		mockCommissionRepo.On("Update", ctx, existing).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewPayCommissionCommandHandler(mockFactory, nil, testLogger())

	// Act
	paid, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Same(t, existing, paid)
	assert.Equal(t, commission.PaymentPaid, paid.PaymentStatus())
	assert.NotNil(t, paid.PaidAt())
	mockCommissionRepo.AssertExpectations(t)
}

func TestPayCommissionCommandHandler_Handle_OrderNotDelivered(t *testing.T) {
	// Arrange
	ctx := t.Context()
	anOrder := restoredOrder(t, kernel.NewUUID(), order.StatusFinished)

	cmd, err := commands.NewPayCommissionCommand(anOrder.ID(), kernel.NewUUID(), actor.RoleManager)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("commission", anOrder.ID().String())
	mockOrderRepo := new(MockOrderRepository)
	mockCommissionRepo := new(MockCommissionRepository)
	mockUoW := new(MockCommissionUoW)
	mockFactory := new(MockCommissionUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("GetForUpdate", ctx, anOrder.ID()).Return(anOrder, nil).Once(),
		mockUoW.On("CommissionRepository").Return(mockCommissionRepo).Once(),
		mockCommissionRepo.On("GetByOrder", ctx, anOrder.ID()).
			Return((*commission.Commission)(nil), notFound).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewPayCommissionCommandHandler(mockFactory, nil, testLogger())

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	mockUoW.AssertExpectations(t)
}

func TestPayCommissionCommandHandler_Handle_NonManagerForbidden(t *testing.T) {
	testCases := []struct {
		name string
		role actor.Role
	}{
		{name: "sales rep", role: actor.RoleSalesRep},
		{name: "production", role: actor.RoleProduction},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			ctx := t.Context()
			cmd, err := commands.NewPayCommissionCommand(kernel.NewUUID(), kernel.NewUUID(), tc.role)
			require.NoError(t, err)

			mockFactory := new(MockCommissionUoWFactory)
			handler := commands.NewPayCommissionCommandHandler(mockFactory, nil, testLogger())

			// Act
			_, err = handler.Handle(ctx, cmd)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrOperationForbidden)
			mockFactory.AssertExpectations(t)
		})
	}
}

func TestPayCommissionCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.PayCommissionCommand // zero value command

	mockFactory := new(MockCommissionUoWFactory)
	handler := commands.NewPayCommissionCommandHandler(mockFactory, nil, testLogger())

	// Act
	_, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPayCommissionCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}
