package queries_test

import (
	"testing"

	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderHistoryQuery_ValidInput(t *testing.T) {
	// Arrange
	orderID := kernel.NewUUID()

	// Act
	query, err := queries.NewGetOrderHistoryQuery(orderID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, orderID, query.OrderID())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrderHistoryQuery_InvalidOrderID(t *testing.T) {
	// Arrange
	var invalidID kernel.UUID // zero value

	// Act
	_, err := queries.NewGetOrderHistoryQuery(invalidID)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderHistoryQuery_Validate_ZeroValue(t *testing.T) {
	// Arrange
	var query queries.GetOrderHistoryQuery // zero value

	// Act
	err := query.Validate()

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderHistoryQueryIsNotConstructed)
}

func TestGetOrdersInProductionQuery_Validate(t *testing.T) {
	// Arrange
	query := queries.NewGetOrdersInProductionQuery()
	var zeroQuery queries.GetOrdersInProductionQuery

	// Act & Assert
	assert.NoError(t, query.Validate())
	assert.ErrorIs(t, zeroQuery.Validate(), queries.ErrGetOrdersInProductionQueryIsNotConstructed)
}

func TestGetUnpaidDeliveredOrdersQuery_Validate(t *testing.T) {
	// Arrange
	query := queries.NewGetUnpaidDeliveredOrdersQuery()
	var zeroQuery queries.GetUnpaidDeliveredOrdersQuery

	// Act & Assert
	assert.NoError(t, query.Validate())
	assert.ErrorIs(t, zeroQuery.Validate(), queries.ErrGetUnpaidDeliveredOrdersQueryIsNotConstructed)
}
