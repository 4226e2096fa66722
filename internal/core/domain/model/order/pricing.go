package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrPricingIsNotConstructed is returned when a Pricing instance was not
// created through NewPricing.
var ErrPricingIsNotConstructed = errors.New("Pricing must be created via NewPricing")

// Pricing groups the monetary breakdown of an order. All amounts share one
// currency. The caller supplies validated totals: the service does not
// recompute total from subtotal, discount, tax and shipping, it stores what
// checkout calculated.
type Pricing struct {
	subtotal       kernel.Money
	discountAmount kernel.Money
	taxAmount      kernel.Money
	shippingCost   kernel.Money
	total          kernel.Money

	guard kernel.ConstructorGuard
}

// NewPricing creates a pricing breakdown, requiring every amount to be a
// valid Money value in the same currency.
func NewPricing(subtotal, discountAmount, taxAmount, shippingCost, total kernel.Money) (Pricing, error) {
	if err := errors.Join(
		subtotal.Validate(),
		discountAmount.Validate(),
		taxAmount.Validate(),
		shippingCost.Validate(),
		total.Validate(),
	); err != nil {
		return Pricing{}, err
	}

	currency := subtotal.Currency()
	for name, m := range map[string]kernel.Money{
		"discountAmount": discountAmount,
		"taxAmount":      taxAmount,
		"shippingCost":   shippingCost,
		"total":          total,
	} {
		if m.Currency() != currency {
			return Pricing{}, errs.NewValueIsInvalidErrorWithCause(
				name, fmt.Errorf("currency %s does not match subtotal currency %s",
					m.Currency(), currency))
		}
	}

	return Pricing{
		subtotal:       subtotal,
		discountAmount: discountAmount,
		taxAmount:      taxAmount,
		shippingCost:   shippingCost,
		total:          total,
		guard:          kernel.NewConstructorGuard(),
	}, nil
}

// Subtotal returns the sum of line totals before adjustments.
func (p Pricing) Subtotal() kernel.Money {
	return p.subtotal
}

// DiscountAmount returns the discount applied to the order.
func (p Pricing) DiscountAmount() kernel.Money {
	return p.discountAmount
}

// TaxAmount returns the tax charged on the order.
func (p Pricing) TaxAmount() kernel.Money {
	return p.taxAmount
}

// ShippingCost returns the shipping charge.
func (p Pricing) ShippingCost() kernel.Money {
	return p.shippingCost
}

// Total returns the grand total the customer was charged.
func (p Pricing) Total() kernel.Money {
	return p.total
}

// Currency returns the shared currency code.
func (p Pricing) Currency() string {
	return p.subtotal.Currency()
}

// Validate ensures the pricing was created through NewPricing.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}
