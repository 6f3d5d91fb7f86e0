package ports

import (
	"context"

	"github.com/quickconvert/quickconvert/internal/models"
)

// Converter is the contract every unit converter satisfies. Implementations
// are immutable after construction and stateless, except the currency
// converter which reads through a shared rate cache.
type Converter interface {
	// Name returns the stable human-readable identifier, used as the registry key.
	Name() string

	// Units returns the complete, fixed set of unit labels this converter
	// accepts, in declaration order. Hosts use the first two as defaults.
	Units() []string

	// ValidateUnit returns apperrors.ErrUnsupportedUnit if the unit is not
	// among Units; the message enumerates the supported units.
	ValidateUnit(unit string) error

	// Convert converts value from fromUnit to toUnit. Identical units
	// short-circuit to the input value. Context is honored only by
	// converters that perform I/O (currency).
	Convert(ctx context.Context, value float64, fromUnit, toUnit string) (float64, error)
}

// ParameterizedConverter extends Converter with extra named numeric inputs
// (e.g. voltage for battery conversions). Plain Convert applies defaults.
type ParameterizedConverter interface {
	Converter

	// Parameters describes the extra inputs this converter accepts.
	Parameters() map[string]models.ParamSpec

	// ConvertWithParams converts with the supplied named parameters.
	// Unrecognized parameters are ignored; omitted ones fall back to their
	// declared defaults.
	ConvertWithParams(ctx context.Context, value float64, fromUnit, toUnit string, params map[string]float64) (float64, error)
}

// RateSource fetches a full exchange rate table against the configured base
// currency. A successful result contains every configured currency code.
type RateSource interface {
	FetchRates(ctx context.Context) (models.RateTable, error)
}
