package order

import (
	"fmt"
	"strings"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

const orderNumberPrefix = "ORD-"

// GenerateOrderNumber produces a human-readable, globally unique order
// number of the form ORD-<unix-millis>-<8 uppercase hex chars>. It is
// assigned exactly once at creation and never changes; the database holds a
// unique constraint as the final arbiter.
func GenerateOrderNumber() string {
	suffix := strings.ToUpper(kernel.NewUUID().String()[:8])
	return fmt.Sprintf("%s%d-%s", orderNumberPrefix, time.Now().UnixMilli(), suffix)
}

// ValidateOrderNumber checks the shape of an order number coming from
// persistence or an external caller.
func ValidateOrderNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if !strings.HasPrefix(number, orderNumberPrefix) {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderNumber", fmt.Errorf("%q does not start with %q", number, orderNumberPrefix))
	}
	return nil
}
