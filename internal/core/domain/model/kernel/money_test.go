package kernel_test

import (
	"testing"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts_non_negative_amounts", func(t *testing.T) {
		m, err := kernel.NewMoney(100000)

		require.NoError(t, err)
		assert.Equal(t, int64(100000), m.Cents())
		assert.InDelta(t, 1000.00, m.Float64(), 0.001)
		assert.Equal(t, "1000.00", m.String())
	})

	t.Run("accepts_zero", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("rejects_negative_amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyFromFloat(t *testing.T) {
	t.Run("rounds_to_nearest_cent", func(t *testing.T) {
		m, err := kernel.MoneyFromFloat(19.995)

		require.NoError(t, err)
		assert.Equal(t, int64(2000), m.Cents())
	})

	t.Run("rejects_negative_amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromFloat(-0.01)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Percent(t *testing.T) {
	tests := []struct {
		name     string
		cents    int64
		rate     float64
		expected int64
	}{
		{"five_percent_of_1000", 100000, 5.0, 5000},
		{"five_percent_of_odd_amount", 1999, 5.0, 100},
		{"zero_amount", 0, 5.0, 0},
		{"zero_rate", 100000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := kernel.NewMoney(tt.cents)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, m.Percent(tt.rate).Cents())
		})
	}
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.NewMoney(500)
	b, _ := kernel.NewMoney(500)
	c, _ := kernel.NewMoney(501)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
