// Package kernel contains the shared value objects of the domain model.
//
// UUID wraps github.com/google/uuid to give entities and aggregates an
// immutable, validated identifier. Money represents non-negative monetary
// amounts in integer cents so order values and commission values never
// accumulate floating point drift.
//
// Both types follow the same rules as the rest of the domain model: they are
// created only through their constructor functions, a zero value is invalid,
// and Validate reports improperly constructed instances.
package kernel
