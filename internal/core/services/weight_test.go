package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickconvert/quickconvert/internal/apperrors"
	"github.com/quickconvert/quickconvert/internal/core/services"
)

func TestWeightConverter_Metadata(t *testing.T) {
	c := services.NewWeightConverter()
	assert.Equal(t, "Weight", c.Name())
	assert.Equal(t, []string{"kg", "g", "mg", "ton", "lb", "oz"}, c.Units())
}

func TestWeightConverter_Convert(t *testing.T) {
	c := services.NewWeightConverter()
	ctx := context.Background()

	tests := []struct {
		name     string
		value    float64
		from, to string
		want     float64
	}{
		{"kilograms to grams", 1.5, "kg", "g", 1500},
		{"grams to milligrams", 2, "g", "mg", 2000},
		{"tons to kilograms", 0.5, "ton", "kg", 500},
		{"pounds to kilograms", 1, "lb", "kg", 0.45359237},
		{"pounds to ounces", 1, "lb", "oz", 16},
		{"zero value", 0, "kg", "g", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(ctx, tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestWeightConverter_RoundTrip(t *testing.T) {
	c := services.NewWeightConverter()
	ctx := context.Background()
	for _, from := range c.Units() {
		for _, to := range c.Units() {
			forward, err := c.Convert(ctx, 7.25, from, to)
			require.NoError(t, err)
			back, err := c.Convert(ctx, forward, to, from)
			require.NoError(t, err)
			assert.InEpsilon(t, 7.25, back, 1e-9, "round trip %s -> %s", from, to)
		}
	}
}

func TestWeightConverter_UnsupportedUnit(t *testing.T) {
	c := services.NewWeightConverter()
	_, err := c.Convert(context.Background(), 1, "stone", "kg")
	require.ErrorIs(t, err, apperrors.ErrUnsupportedUnit)
	_, err = c.Convert(context.Background(), 1, "kg", "stone")
	require.ErrorIs(t, err, apperrors.ErrUnsupportedUnit)
}
