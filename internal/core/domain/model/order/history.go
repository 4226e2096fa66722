package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
)

// ErrStatusHistoryIsNotConstructed is returned when a StatusHistory
// instance was not created through NewStatusHistory or RestoreStatusHistory.
var ErrStatusHistoryIsNotConstructed = errors.New(
	"StatusHistory must be created via NewStatusHistory or RestoreStatusHistory")

// StatusHistory is one append-only audit record of a status change.
// PreviousStatus is nil only for the initial PLACED entry written at order
// creation. Records are never updated or deleted individually.
type StatusHistory struct {
	id             kernel.UUID
	status         Status
	previousStatus *Status
	reason         string
	changedBy      kernel.UUID
	createdAt      time.Time

	guard kernel.ConstructorGuard
}

// NewStatusHistory creates an audit record with a generated identity and
// the current time.
func NewStatusHistory(
	status Status,
	previousStatus *Status,
	reason string,
	changedBy kernel.UUID,
) (StatusHistory, error) {
	return RestoreStatusHistory(kernel.NewUUID(), status, previousStatus, reason, changedBy, time.Now().UTC())
}

// RestoreStatusHistory reconstructs an audit record with a known identity
// and timestamp, typically when loading from persistence.
func RestoreStatusHistory(
	id kernel.UUID,
	status Status,
	previousStatus *Status,
	reason string,
	changedBy kernel.UUID,
	createdAt time.Time,
) (StatusHistory, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		changedBy.Validate(),
	); err != nil {
		return StatusHistory{}, err
	}

	if previousStatus != nil {
		if err := previousStatus.Validate(); err != nil {
			return StatusHistory{}, err
		}
	}

	return StatusHistory{
		id:             id,
		status:         status,
		previousStatus: previousStatus,
		reason:         reason,
		changedBy:      changedBy,
		createdAt:      createdAt,
		guard:          kernel.NewConstructorGuard(),
	}, nil
}

// ID returns the record's unique identifier.
func (h StatusHistory) ID() kernel.UUID {
	return h.id
}

// Status returns the status that was entered.
func (h StatusHistory) Status() Status {
	return h.status
}

// PreviousStatus returns the status before the change.
// Nil only for the initial PLACED entry.
func (h StatusHistory) PreviousStatus() *Status {
	return h.previousStatus
}

// Reason returns the free-text reason supplied for the change.
func (h StatusHistory) Reason() string {
	return h.reason
}

// ChangedBy returns the identity of whoever triggered the change.
func (h StatusHistory) ChangedBy() kernel.UUID {
	return h.changedBy
}

// CreatedAt returns when the change was recorded.
func (h StatusHistory) CreatedAt() time.Time {
	return h.createdAt
}

// Validate ensures the record was created through a constructor.
func (h StatusHistory) Validate() error {
	return h.guard.Validate(ErrStatusHistoryIsNotConstructed)
}
