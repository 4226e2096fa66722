package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	PLACED ──> CONFIRMED ──> PROCESSING ──> SHIPPED ──> DELIVERED ──> RETURNED
//	   │            │             │
//	   └────────────┴─────────────┴──> CANCELLED
//
// CANCELLED and RETURNED are terminal: the generic transition graph has no
// outgoing edges from them. Requesting the current status again is always
// legal (idempotent transition).
//
// Status is serialized by name, both in persistence and in outbound events.
type Status string

const (
	// Placed is the initial status assigned when an order is created
	// from checkout data.
	Placed Status = "PLACED"

	// Confirmed indicates the order has been acknowledged for fulfillment.
	Confirmed Status = "CONFIRMED"

	// Processing indicates the order is being picked and packed.
	Processing Status = "PROCESSING"

	// Shipped indicates the order has left the warehouse.
	// Shipped orders can no longer be cancelled.
	Shipped Status = "SHIPPED"

	// Delivered indicates the order reached the customer.
	// Only delivered orders are eligible for a return request.
	Delivered Status = "DELIVERED"

	// Cancelled is a terminal status reached through the cancel operation
	// or a CANCELLED transition from an early status.
	Cancelled Status = "CANCELLED"

	// Returned is a terminal status reached when the customer requests a
	// return of a delivered order.
	Returned Status = "RETURNED"
)

// getValidStatuses returns the set of statuses accepted from external
// sources such as the database or API requests.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Placed:     {},
		Confirmed:  {},
		Processing: {},
		Shipped:    {},
		Delivered:  {},
		Cancelled:  {},
		Returned:   {},
	}
}

// getTransitions returns the directed edges of the status graph.
// Terminal statuses map to an empty edge list.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Placed:     {Confirmed, Cancelled},
		Confirmed:  {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
		Delivered:  {Returned},
		Cancelled:  {},
		Returned:   {},
	}
}

// ParseStatus converts a string into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the Status value is one of the known statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the status name, e.g. "PLACED".
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status has no outgoing edges in the
// generic transition graph.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Returned
}

// CanTransitionTo reports whether the generic status graph permits moving
// to next. Requesting the current status again is always permitted.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the move to next against the generic graph and
// returns the resulting status. An illegal edge fails with an
// InvalidOperationError naming both statuses.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(next) {
		return "", errs.NewInvalidOperationError(
			fmt.Sprintf("invalid status transition: %s -> %s", s, next))
	}
	return next, nil
}

// CanCancel reports whether the cancel operation is permitted from this
// status. Cancel uses its own guard instead of the generic graph: it is
// rejected only once the order has shipped, been delivered, or is already
// cancelled. This intentionally admits RETURNED -> CANCELLED, an edge the
// generic graph does not have.
func (s Status) CanCancel() bool {
	return s != Shipped && s != Delivered && s != Cancelled
}

// CanReturn reports whether a return may be requested from this status.
// Only delivered orders are eligible.
func (s Status) CanReturn() bool {
	return s == Delivered
}
