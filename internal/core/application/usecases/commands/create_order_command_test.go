package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	params := validCreateOrderParams(userID, tenantID)

	cmd, err := commands.NewCreateOrderCommand(params)
	require.NoError(t, err)
	assert.Equal(t, userID, cmd.Params().UserID)
	assert.Equal(t, tenantID, cmd.Params().TenantID)
	assert.Len(t, cmd.Params().Items, 1)
}

func TestNewCreateOrderCommand_DefaultsCurrency(t *testing.T) {
	params := validCreateOrderParams(kernel.NewUUID(), kernel.NewUUID())
	params.Currency = ""

	cmd, err := commands.NewCreateOrderCommand(params)
	require.NoError(t, err)
	assert.Equal(t, "INR", cmd.Params().Currency)
}

func TestNewCreateOrderCommand_KeepsExplicitCurrency(t *testing.T) {
	params := validCreateOrderParams(kernel.NewUUID(), kernel.NewUUID())
	params.Currency = "USD"

	cmd, err := commands.NewCreateOrderCommand(params)
	require.NoError(t, err)
	assert.Equal(t, "USD", cmd.Params().Currency)
}

func TestNewCreateOrderCommand_InvalidUserID(t *testing.T) {
	params := validCreateOrderParams(kernel.UUID{}, kernel.NewUUID())

	_, err := commands.NewCreateOrderCommand(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	params := validCreateOrderParams(kernel.NewUUID(), kernel.NewUUID())
	params.Items = nil

	_, err := commands.NewCreateOrderCommand(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_NonPositiveTotals(t *testing.T) {
	params := validCreateOrderParams(kernel.NewUUID(), kernel.NewUUID())
	params.Subtotal = decimal.Zero

	_, err := commands.NewCreateOrderCommand(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	params = validCreateOrderParams(kernel.NewUUID(), kernel.NewUUID())
	params.Total = decimal.NewFromInt(-1)

	_, err = commands.NewCreateOrderCommand(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
