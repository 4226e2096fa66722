package kernel

import (
	"fmt"

	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created via
// NewMoney or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney or ZeroMoney")

// Money is a value object representing a non-negative fixed-point monetary
// amount with a 3-letter currency code. Amounts use decimal arithmetic to
// avoid binary floating-point rounding in order totals.
type Money struct {
	amount   decimal.Decimal
	currency string

	guard ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount and currency code.
// The amount must not be negative and the currency must be a 3-letter
// uppercase code.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", amount))
	}
	if err := validateCurrency(currency); err != nil {
		return Money{}, err
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    NewConstructorGuard(),
	}, nil
}

// ZeroMoney creates a zero amount in the given currency.
// Used for optional monetary fields that default to zero.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the 3-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String returns the amount followed by the currency code, e.g. "22.00 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

// Validate ensures the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func validateCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if len(currency) != 3 {
		return errs.NewValueIsInvalidErrorWithCause(
			"currency", fmt.Errorf("%q is not a 3-letter code", currency))
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause(
				"currency", fmt.Errorf("%q is not a 3-letter uppercase code", currency))
		}
	}
	return nil
}
