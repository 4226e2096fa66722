package errs_test

import (
	"errors"
	"testing"

	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestAccessDeniedError(t *testing.T) {
	t.Run("NewAccessDeniedError", func(t *testing.T) {
		err := errs.NewAccessDeniedError("order belongs to different tenant")

		assert.Equal(t, "order belongs to different tenant", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "access denied: order belongs to different tenant", err.Error())
		assert.Equal(t, errs.ErrAccessDenied, err.Unwrap())
	})

	t.Run("NewAccessDeniedErrorWithCause", func(t *testing.T) {
		cause := errors.New("role lookup failed")
		err := errs.NewAccessDeniedErrorWithCause("insufficient role", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "access denied: insufficient role (cause: role lookup failed)", err.Error())
	})
}

func TestInvalidOperationError(t *testing.T) {
	t.Run("NewInvalidOperationError", func(t *testing.T) {
		err := errs.NewInvalidOperationError("invalid status transition: SHIPPED -> PLACED")

		assert.Equal(t, "invalid status transition: SHIPPED -> PLACED", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid operation: invalid status transition: SHIPPED -> PLACED", err.Error())
		assert.Equal(t, errs.ErrInvalidOperation, err.Unwrap())
	})

	t.Run("NewInvalidOperationErrorWithCause", func(t *testing.T) {
		cause := errors.New("terminal state")
		err := errs.NewInvalidOperationErrorWithCause("order cannot be cancelled", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "invalid operation: order cannot be cancelled (cause: terminal state)", err.Error())
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("currency")

		assert.Equal(t, "currency", err.ParamName)
		assert.Equal(t, "value is required: currency", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("negative amount")
		err := errs.NewValueIsInvalidErrorWithCause("subtotal", cause)

		assert.Equal(t, "subtotal", err.ParamName)
		assert.Equal(t, "value is invalid: subtotal (cause: negative amount)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewAccessDeniedError("not the owner"), errs.ErrAccessDenied)
	require.ErrorIs(t, errs.NewInvalidOperationError("bad transition"), errs.ErrInvalidOperation)
	require.ErrorIs(t, errs.NewValueIsRequiredError("sku"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsInvalidError("quantity"), errs.ErrValueIsInvalid)
}
