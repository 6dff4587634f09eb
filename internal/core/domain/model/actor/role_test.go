package actor_test

import (
	"testing"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected actor.Role
	}{
		{"manager", actor.RoleManager},
		{"sales_rep", actor.RoleSalesRep},
		{"production", actor.RoleProduction},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := actor.ParseRole(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, role)
			assert.Equal(t, tt.input, role.String())
		})
	}

	t.Run("rejects_unknown_names", func(t *testing.T) {
		for _, s := range []string{"", "admin", "Manager", "salesRep"} {
			_, err := actor.ParseRole(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, actor.RoleManager.Validate())
	require.NoError(t, actor.RoleSalesRep.Validate())
	require.NoError(t, actor.RoleProduction.Validate())

	require.ErrorIs(t, actor.RoleUnknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, actor.Role(42).Validate(), errs.ErrValueIsInvalid)
}

func TestRole_IsProductionStaff(t *testing.T) {
	assert.True(t, actor.RoleProduction.IsProductionStaff())
	assert.True(t, actor.RoleManager.IsProductionStaff())
	assert.False(t, actor.RoleSalesRep.IsProductionStaff())
	assert.False(t, actor.RoleUnknown.IsProductionStaff())
}
