// Package services contains stateless domain services: logic that spans
// aggregates and so belongs to neither of them.
//
// CommissionCalculator derives the sales commission owed for a delivered
// order. It is pure: given the same order it always produces the same
// commission, and it never touches persistence.
package services
