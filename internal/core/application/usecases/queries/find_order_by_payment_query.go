package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
)

var (
	ErrFindOrderByPaymentQueryIsNotConstructed = errors.New(
		"FindOrderByPaymentQuery must be created via NewFindOrderByPaymentQuery constructor",
	)
)

// FindOrderByPaymentQuery looks up the caller's order for one payment.
// Checkout uses this as its idempotency probe, so absence is an expected
// outcome and not an error.
type FindOrderByPaymentQuery struct {
	paymentID kernel.UUID
	userID    kernel.UUID
	tenantID  kernel.UUID

	guard kernel.ConstructorGuard
}

// NewFindOrderByPaymentQuery validates the lookup triple.
func NewFindOrderByPaymentQuery(paymentID, userID, tenantID kernel.UUID) (FindOrderByPaymentQuery, error) {
	if err := errors.Join(
		paymentID.Validate(),
		userID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return FindOrderByPaymentQuery{}, err
	}

	return FindOrderByPaymentQuery{
		paymentID: paymentID,
		userID:    userID,
		tenantID:  tenantID,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindOrderByPaymentQuery) Validate() error {
	return q.guard.Validate(ErrFindOrderByPaymentQueryIsNotConstructed)
}

// PaymentID returns the payment to look up.
func (q FindOrderByPaymentQuery) PaymentID() kernel.UUID {
	return q.paymentID
}

// UserID returns the owner scope of the lookup.
func (q FindOrderByPaymentQuery) UserID() kernel.UUID {
	return q.userID
}

// TenantID returns the tenant scope of the lookup.
func (q FindOrderByPaymentQuery) TenantID() kernel.UUID {
	return q.tenantID
}
