package order

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created via NewHistoryEntry or RestoreHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New(
	"HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry")

// HistoryEntry records one successful status transition: the status entered,
// who caused it, an optional note (rejection reason, transition summary), and
// when it happened. Entries are append-only and immutable once written; every
// successful transition produces exactly one.
type HistoryEntry struct {
	orderID   kernel.UUID
	status    Status
	actorID   kernel.UUID
	note      string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewHistoryEntry creates a history entry for a transition that just happened.
func NewHistoryEntry(
	orderID kernel.UUID,
	status Status,
	actorID kernel.UUID,
	note string,
	createdAt time.Time,
) (HistoryEntry, error) {
	if err := errors.Join(
		orderID.Validate(),
		status.Validate(),
		actorID.Validate(),
	); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		orderID:   orderID,
		status:    status,
		actorID:   actorID,
		note:      note,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreHistoryEntry reconstructs a history entry from persistence.
func RestoreHistoryEntry(
	orderID kernel.UUID,
	status Status,
	actorID kernel.UUID,
	note string,
	createdAt time.Time,
) (HistoryEntry, error) {
	return NewHistoryEntry(orderID, status, actorID, note, createdAt)
}

// Validate ensures the entry was created through a constructor.
func (h HistoryEntry) Validate() error {
	return h.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

// OrderID returns the order the entry belongs to.
func (h HistoryEntry) OrderID() kernel.UUID {
	return h.orderID
}

// Status returns the status the order entered.
func (h HistoryEntry) Status() Status {
	return h.status
}

// ActorID returns who caused the transition.
func (h HistoryEntry) ActorID() kernel.UUID {
	return h.actorID
}

// Note returns the optional free-text note.
func (h HistoryEntry) Note() string {
	return h.note
}

// CreatedAt returns when the transition happened.
func (h HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}
