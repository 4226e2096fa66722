package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was
// not created through NewOrderItem or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errors.New(
	"OrderItem must be created via NewOrderItem or RestoreOrderItem")

// OrderItem is a line item belonging to exactly one order. Product name,
// SKU and prices are snapshots captured at order time; they are copied
// value data, never refreshed from the catalog, so later catalog changes
// cannot retroactively alter historical orders. Items are immutable after
// creation.
type OrderItem struct {
	id          kernel.UUID
	productID   kernel.UUID
	sku         string
	productName string
	quantity    int
	unitPrice   kernel.Money
	totalPrice  kernel.Money

	guard kernel.ConstructorGuard
}

// NewOrderItem creates a line item with a generated identity.
// Quantity must be positive, SKU and product name are required, and both
// prices must be valid Money values in the same currency.
func NewOrderItem(
	productID kernel.UUID,
	sku string,
	productName string,
	quantity int,
	unitPrice kernel.Money,
	totalPrice kernel.Money,
) (OrderItem, error) {
	return RestoreOrderItem(kernel.NewUUID(), productID, sku, productName, quantity, unitPrice, totalPrice)
}

// RestoreOrderItem reconstructs a line item with a known identity,
// typically when loading from persistence.
func RestoreOrderItem(
	id kernel.UUID,
	productID kernel.UUID,
	sku string,
	productName string,
	quantity int,
	unitPrice kernel.Money,
	totalPrice kernel.Money,
) (OrderItem, error) {
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		unitPrice.Validate(),
		totalPrice.Validate(),
	); err != nil {
		return OrderItem{}, err
	}

	if sku == "" {
		return OrderItem{}, errs.NewValueIsRequiredError("sku")
	}
	if productName == "" {
		return OrderItem{}, errs.NewValueIsRequiredError("productName")
	}
	if quantity <= 0 {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice.Currency() != totalPrice.Currency() {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause(
			"totalPrice", fmt.Errorf("currency %s does not match unit price currency %s",
				totalPrice.Currency(), unitPrice.Currency()))
	}

	return OrderItem{
		id:          id,
		productID:   productID,
		sku:         sku,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		totalPrice:  totalPrice,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// ID returns the item's unique identifier.
func (i OrderItem) ID() kernel.UUID {
	return i.id
}

// ProductID returns the catalog product reference.
func (i OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// SKU returns the stock keeping unit captured at order time.
func (i OrderItem) SKU() string {
	return i.sku
}

// ProductName returns the display name snapshot captured at order time.
func (i OrderItem) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price snapshot.
func (i OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns the line total snapshot.
func (i OrderItem) TotalPrice() kernel.Money {
	return i.totalPrice
}

// Currency returns the item's currency code.
func (i OrderItem) Currency() string {
	return i.unitPrice.Currency()
}

// Validate ensures the item was created through a constructor.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}
