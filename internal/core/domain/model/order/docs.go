// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order moves through quote, approved, in_production, finished, delivered,
// and canceled. The Status type owns the transition graph; the Order aggregate
// enforces it, records the lifecycle timestamps, and tracks the production
// responsible. Every successful transition is recorded as an append-only
// HistoryEntry.
//
// All types are created through constructor functions and keep their fields
// private so invariants cannot be bypassed.
package order
