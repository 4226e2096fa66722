package order_test

import (
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, name := range []string{
		"PLACED", "CONFIRMED", "PROCESSING", "SHIPPED", "DELIVERED", "CANCELLED", "RETURNED",
	} {
		status, err := order.ParseStatus(name)
		require.NoError(t, err)
		assert.Equal(t, name, status.String())
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	for _, name := range []string{"", "placed", "LOST", "PLACED "} {
		_, err := order.ParseStatus(name)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", name)
	}
}

func TestStatus_CanTransitionTo_FullGraph(t *testing.T) {
	all := []order.Status{
		order.Placed, order.Confirmed, order.Processing,
		order.Shipped, order.Delivered, order.Cancelled, order.Returned,
	}
	allowed := map[order.Status][]order.Status{
		order.Placed:     {order.Confirmed, order.Cancelled},
		order.Confirmed:  {order.Processing, order.Cancelled},
		order.Processing: {order.Shipped, order.Cancelled},
		order.Shipped:    {order.Delivered},
		order.Delivered:  {order.Returned},
		order.Cancelled:  {},
		order.Returned:   {},
	}

	for from, targets := range allowed {
		allowedSet := map[order.Status]bool{from: true} // same-status always legal
		for _, target := range targets {
			allowedSet[target] = true
		}
		for _, to := range all {
			assert.Equal(t, allowedSet[to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_TransitionTo_IllegalEdge(t *testing.T) {
	_, err := order.Placed.TransitionTo(order.Shipped)
	require.ErrorIs(t, err, errs.ErrInvalidOperation)
	assert.Contains(t, err.Error(), "PLACED -> SHIPPED")
}

func TestStatus_TransitionTo_SameStatus(t *testing.T) {
	next, err := order.Cancelled.TransitionTo(order.Cancelled)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, next)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.Returned.IsTerminal())
	assert.False(t, order.Placed.IsTerminal())
	assert.False(t, order.Delivered.IsTerminal())
}

func TestStatus_CanCancel(t *testing.T) {
	assert.True(t, order.Placed.CanCancel())
	assert.True(t, order.Confirmed.CanCancel())
	assert.True(t, order.Processing.CanCancel())
	assert.False(t, order.Shipped.CanCancel())
	assert.False(t, order.Delivered.CanCancel())
	assert.False(t, order.Cancelled.CanCancel())
	// returned orders may still be cancelled, e.g. when a return is
	// resolved by voiding the order
	assert.True(t, order.Returned.CanCancel())
}

func TestStatus_CanReturn(t *testing.T) {
	for _, status := range []order.Status{
		order.Placed, order.Confirmed, order.Processing,
		order.Shipped, order.Cancelled, order.Returned,
	} {
		assert.False(t, status.CanReturn(), "%s", status)
	}
	assert.True(t, order.Delivered.CanReturn())
}
