package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// defaultCurrency is applied when checkout supplies no currency code.
const defaultCurrency = "INR"

// CreateOrderItemInput carries one line item of the checkout request.
// Name, SKU and prices are snapshots: the order service never consults the
// catalog, it stores what checkout validated.
type CreateOrderItemInput struct {
	ProductID   kernel.UUID
	SKU         string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// CreateOrderParams is the full checkout payload for order creation.
// DiscountAmount, TaxAmount and ShippingCost default to zero and Currency
// to the service default when left empty.
type CreateOrderParams struct {
	UserID            kernel.UUID
	TenantID          kernel.UUID
	ShippingAddressID kernel.UUID
	PaymentID         *kernel.UUID
	Items             []CreateOrderItemInput
	Subtotal          decimal.Decimal
	DiscountAmount    decimal.Decimal
	TaxAmount         decimal.Decimal
	ShippingCost      decimal.Decimal
	Total             decimal.Decimal
	Currency          string
	Notes             string
}

// CreateOrderCommand represents a validated request to record an order
// placed during checkout.
type CreateOrderCommand struct {
	params CreateOrderParams

	guard kernel.ConstructorGuard
}

// NewCreateOrderCommand validates the checkout payload and builds the
// command. Identity fields must be valid UUIDs, at least one item is
// required, and subtotal and total must be positive.
func NewCreateOrderCommand(params CreateOrderParams) (CreateOrderCommand, error) {
	if err := errors.Join(
		params.UserID.Validate(),
		params.TenantID.Validate(),
		params.ShippingAddressID.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if params.PaymentID != nil {
		if err := params.PaymentID.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	if len(params.Items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	if !params.Subtotal.IsPositive() {
		return CreateOrderCommand{}, errs.NewValueIsInvalidError("subtotal")
	}
	if !params.Total.IsPositive() {
		return CreateOrderCommand{}, errs.NewValueIsInvalidError("total")
	}

	if params.Currency == "" {
		params.Currency = defaultCurrency
	}

	return CreateOrderCommand{
		params: params,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Params returns the validated checkout payload.
func (c CreateOrderCommand) Params() CreateOrderParams {
	return c.params
}
