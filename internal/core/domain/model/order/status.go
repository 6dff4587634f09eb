package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the business workflow:
//
//	quote ──┬──> approved ──┬──> in_production ──> finished ──> delivered
//	        │       ▲       │         │
//	        │       └───────│─────────┘  (regression: back to queue)
//	        │               │
//	        └──> canceled <─┘
//
// delivered and canceled are terminal. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusQuote is the initial status: a priced proposal awaiting a decision.
	StatusQuote

	// StatusApproved means the quote was accepted and the order waits in the
	// production queue.
	StatusApproved

	// StatusInProduction means the workshop is working through the checklist.
	StatusInProduction

	// StatusFinished means production completed with a full checklist.
	StatusFinished

	// StatusDelivered means the goods reached the customer. Terminal; unlocks
	// commission payment.
	StatusDelivered

	// StatusCanceled means the quote was rejected. Terminal.
	StatusCanceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "unknown",
		StatusQuote:        "quote",
		StatusApproved:     "approved",
		StatusInProduction: "in_production",
		StatusFinished:     "finished",
		StatusDelivered:    "delivered",
		StatusCanceled:     "canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusQuote:        "quote",
		StatusApproved:     "approved",
		StatusInProduction: "in_production",
		StatusFinished:     "finished",
		StatusDelivered:    "delivered",
		StatusCanceled:     "canceled",
	}
}

// transitions is the edge set of the lifecycle graph. Any pair not listed
// here is illegal, including self-transitions.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		StatusQuote:        {StatusApproved, StatusCanceled},
		StatusApproved:     {StatusInProduction, StatusCanceled},
		StatusInProduction: {StatusFinished, StatusApproved},
		StatusFinished:     {StatusDelivered},
	}
}

// ParseStatus converts the wire representation of a status into a Status.
// Matching is exact; there is no partial or fuzzy matching.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status", s),
	)
}

// Validate checks that the Status is one of the defined lifecycle values.
// Used when reconstructing orders from persistence or parsing external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted wire name of the status ("quote",
// "in_production", ...). Implements fmt.Stringer and is safe to call on
// invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether target is reachable from s by a single
// edge of the lifecycle graph.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing edges.
func (s Status) IsTerminal() bool {
	return len(transitions()[s]) == 0 && s != StatusUnknown
}

// TransitionTo validates the edge s -> target and returns target.
// Illegal edges fail with an InvalidTransitionError without side effects.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
