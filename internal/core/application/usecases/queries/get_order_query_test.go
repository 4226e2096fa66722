package queries_test

import (
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	callerID := kernel.NewUUID()
	tenantID := kernel.NewUUID()

	q, err := queries.NewGetOrderQuery(orderID, callerID, tenantID, []string{"CUSTOMER"})
	require.NoError(t, err)
	assert.Equal(t, orderID, q.OrderID())
	assert.Equal(t, callerID, q.CallerID())
	assert.Equal(t, tenantID, q.TenantID())
	assert.Equal(t, []string{"CUSTOMER"}, q.Roles())
}

func TestNewGetOrderQuery_InvalidIDs(t *testing.T) {
	valid := kernel.NewUUID()

	_, err := queries.NewGetOrderQuery(kernel.UUID{}, valid, valid, nil)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetOrderQuery(valid, kernel.UUID{}, valid, nil)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetOrderQuery(valid, valid, kernel.UUID{}, nil)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderQuery_Validate_NotConstructed(t *testing.T) {
	q := queries.GetOrderQuery{}
	require.ErrorIs(t, q.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}
