package checklist

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrChecklistIsNotConstructed is returned when a Checklist was not created
	// via NewChecklist or RestoreChecklist.
	ErrChecklistIsNotConstructed = errors.New(
		"Checklist must be created via NewChecklist or RestoreChecklist")

	// ErrChecklistIncomplete is returned when production is asked to finish
	// while fewer than all four stage flags are set.
	ErrChecklistIncomplete = errors.New("checklist incomplete")
)

// Checklist is the per-order production checklist aggregate. It holds the
// four stage flags, the responsible actor, and the production window
// timestamps.
//
// Invariants:
//   - finishedAt is set only when all four stage flags are true.
//   - Reset clears the flags and the responsible but preserves the entry.
type Checklist struct {
	orderID       kernel.UUID
	cut           bool
	sewing        bool
	finishing     bool
	qualityCheck  bool
	startedAt     *time.Time
	finishedAt    *time.Time
	responsibleID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewChecklist creates the checklist for an order entering production: all
// stage flags false, the given actor responsible, started now.
func NewChecklist(orderID kernel.UUID, responsibleID kernel.UUID, now time.Time) (*Checklist, error) {
	if err := errors.Join(
		orderID.Validate(),
		responsibleID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Checklist{
		orderID:       orderID,
		startedAt:     &now,
		responsibleID: &responsibleID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreChecklist reconstructs a checklist from persistence.
func RestoreChecklist(
	orderID kernel.UUID,
	cut, sewing, finishing, qualityCheck bool,
	startedAt, finishedAt *time.Time,
	responsibleID *kernel.UUID,
) (*Checklist, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if responsibleID != nil {
		if err := responsibleID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Checklist{
		orderID:       orderID,
		cut:           cut,
		sewing:        sewing,
		finishing:     finishing,
		qualityCheck:  qualityCheck,
		startedAt:     startedAt,
		finishedAt:    finishedAt,
		responsibleID: responsibleID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Checklist was created through a constructor.
func (c *Checklist) Validate() error {
	if c == nil {
		return ErrChecklistIsNotConstructed
	}
	return c.guard.Validate(ErrChecklistIsNotConstructed)
}

// OrderID returns the order the checklist belongs to.
func (c *Checklist) OrderID() kernel.UUID {
	return c.orderID
}

// StartedAt returns when the current production run began.
func (c *Checklist) StartedAt() *time.Time {
	return c.startedAt
}

// FinishedAt returns when production finished, nil until complete.
func (c *Checklist) FinishedAt() *time.Time {
	return c.finishedAt
}

// Responsible returns the actor working the checklist, nil after a reset.
func (c *Checklist) Responsible() *kernel.UUID {
	return c.responsibleID
}

// Stage returns the flag for one stage.
func (c *Checklist) Stage(stage Stage) (bool, error) {
	switch stage {
	case StageCut:
		return c.cut, nil
	case StageSewing:
		return c.sewing, nil
	case StageFinishing:
		return c.finishing, nil
	case StageQualityCheck:
		return c.qualityCheck, nil
	default:
		return false, errs.NewValueIsInvalidError("stage")
	}
}

// SetStage sets or clears one stage flag. Stages are independent; no ordering
// between them is enforced.
func (c *Checklist) SetStage(stage Stage, done bool) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	switch stage {
	case StageCut:
		c.cut = done
	case StageSewing:
		c.sewing = done
	case StageFinishing:
		c.finishing = done
	case StageQualityCheck:
		c.qualityCheck = done
	}
	return nil
}

// IsComplete reports whether all four stage flags are true.
func (c *Checklist) IsComplete() bool {
	return c.cut && c.sewing && c.finishing && c.qualityCheck
}

// Begin re-arms the checklist for a production run: assigns the responsible
// and stamps the start. Called on first entry into production and again after
// a regression sent the order back to the queue.
func (c *Checklist) Begin(responsibleID kernel.UUID, now time.Time) error {
	if err := responsibleID.Validate(); err != nil {
		return err
	}

	c.responsibleID = &responsibleID
	c.startedAt = &now
	return nil
}

// Finish stamps the completion time. Fails with ErrChecklistIncomplete while
// any stage flag is false, leaving the checklist untouched.
func (c *Checklist) Finish(now time.Time) error {
	if !c.IsComplete() {
		return ErrChecklistIncomplete
	}

	c.finishedAt = &now
	return nil
}

// Reset clears all four stage flags, the completion time, and the
// responsible. The entry itself survives, preserving history. Called on
// regression from production back to the queue.
func (c *Checklist) Reset() {
	c.cut = false
	c.sewing = false
	c.finishing = false
	c.qualityCheck = false
	c.finishedAt = nil
	c.responsibleID = nil
}
