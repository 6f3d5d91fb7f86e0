package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickconvert/quickconvert/internal/apperrors"
	"github.com/quickconvert/quickconvert/internal/core/services"
)

func TestConverterRegistry_RegisterAndGet(t *testing.T) {
	registry := services.NewConverterRegistry()

	require.NoError(t, registry.Register(services.NewLengthConverter()))
	require.NoError(t, registry.Register(services.NewWeightConverter()))

	converter, err := registry.GetConverter("Length")
	require.NoError(t, err)
	assert.Equal(t, "Length", converter.Name())

	assert.True(t, registry.Has("Weight"))
	assert.False(t, registry.Has("Temperature"))
}

func TestConverterRegistry_DuplicateName(t *testing.T) {
	registry := services.NewConverterRegistry()
	require.NoError(t, registry.Register(services.NewLengthConverter()))

	err := registry.Register(services.NewLengthConverter())
	require.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestConverterRegistry_GetMissing(t *testing.T) {
	registry := services.NewConverterRegistry()
	_, err := registry.GetConverter("Pressure")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestConverterRegistry_ListPreservesRegistrationOrder(t *testing.T) {
	registry := services.NewConverterRegistry()
	require.NoError(t, registry.Register(services.NewTemperatureConverter()))
	require.NoError(t, registry.Register(services.NewLengthConverter()))
	require.NoError(t, registry.Register(services.NewWeightConverter()))

	assert.Equal(t, []string{"Temperature", "Length", "Weight"}, registry.ListNames())

	converters := registry.ListConverters()
	require.Len(t, converters, 3)
	assert.Equal(t, "Temperature", converters[0].Name())
	assert.Equal(t, "Weight", converters[2].Name())
}

func TestConverterRegistry_Unregister(t *testing.T) {
	registry := services.NewConverterRegistry()
	require.NoError(t, registry.Register(services.NewLengthConverter()))
	require.NoError(t, registry.Register(services.NewWeightConverter()))

	require.NoError(t, registry.Unregister("Length"))
	assert.False(t, registry.Has("Length"))
	assert.Equal(t, []string{"Weight"}, registry.ListNames())

	err := registry.Unregister("Length")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	// A freed name can be registered again.
	require.NoError(t, registry.Register(services.NewLengthConverter()))
}

func TestConverterRegistry_Clear(t *testing.T) {
	registry := services.NewConverterRegistry()
	require.NoError(t, registry.Register(services.NewLengthConverter()))

	registry.Clear()
	assert.Empty(t, registry.ListNames())
	assert.Empty(t, registry.ListConverters())
	assert.False(t, registry.Has("Length"))
}

func TestNewDefaultRegistry(t *testing.T) {
	registry, err := services.NewDefaultRegistry(services.DefaultRegistryOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Length", "Weight", "Temperature", "Data Size", "Battery", "Currency"}, registry.ListNames())

	// Every registered converter satisfies the identity law without I/O.
	for _, converter := range registry.ListConverters() {
		units := converter.Units()
		require.NotEmpty(t, units)
		got, err := converter.Convert(context.Background(), 12.5, units[0], units[0])
		require.NoError(t, err)
		assert.Equal(t, 12.5, got, "identity for %s", converter.Name())
	}
}
