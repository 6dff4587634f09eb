// Package actor defines the resolved identity the workflow engine authorizes
// against. Authentication happens upstream; the engine only ever receives an
// already-resolved (actor id, role) pair and never reinterprets it.
package actor

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Role is the value object describing what an actor is allowed to do in the
// order workflow. It is an enum with an invalid zero value, mirroring the
// status value objects of the domain model.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleManager may perform every workflow operation, including commission payment.
	RoleManager

	// RoleSalesRep may approve or reject quotes for orders they own.
	RoleSalesRep

	// RoleProduction may drive the production edges of the order lifecycle.
	RoleProduction
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RoleManager:    "manager",
		RoleSalesRep:   "sales_rep",
		RoleProduction: "production",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleManager:    "manager",
		RoleSalesRep:   "sales_rep",
		RoleProduction: "production",
	}
}

// ParseRole converts the wire representation of a role into a Role.
// Matching is exact; unknown names fail with a value-invalid error.
func ParseRole(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a known role", s),
	)
}

// Validate checks that the Role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire name of the role. Implements fmt.Stringer and is
// safe to call on invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// IsProductionStaff reports whether the role may drive production transitions.
func (r Role) IsProductionStaff() bool {
	return r == RoleProduction || r == RoleManager
}
