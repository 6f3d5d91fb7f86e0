package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/quickconvert/quickconvert/internal/adapters/exchangerate"
	"github.com/quickconvert/quickconvert/internal/apperrors"
	"github.com/quickconvert/quickconvert/internal/core/ports"
)

// ConverterRegistry maps converter names to instances, preserving
// registration order for listings. It is populated once at startup and
// read-mostly afterwards; it is not safe for concurrent mutation.
type ConverterRegistry struct {
	converters map[string]ports.Converter
	order      []string
}

// NewConverterRegistry creates an empty registry.
func NewConverterRegistry() *ConverterRegistry {
	return &ConverterRegistry{converters: make(map[string]ports.Converter)}
}

// Register adds a converter, failing with apperrors.ErrDuplicate when a
// converter with the same name is already registered.
func (r *ConverterRegistry) Register(converter ports.Converter) error {
	name := converter.Name()
	if _, exists := r.converters[name]; exists {
		return fmt.Errorf("%w: converter %q is already registered", apperrors.ErrDuplicate, name)
	}
	r.converters[name] = converter
	r.order = append(r.order, name)
	return nil
}

// GetConverter retrieves a converter by name.
func (r *ConverterRegistry) GetConverter(name string) (ports.Converter, error) {
	converter, ok := r.converters[name]
	if !ok {
		return nil, fmt.Errorf("%w: no converter named %q is registered", apperrors.ErrNotFound, name)
	}
	return converter, nil
}

// ListConverters returns all registered converters in registration order.
func (r *ConverterRegistry) ListConverters() []ports.Converter {
	out := make([]ports.Converter, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.converters[name])
	}
	return out
}

// ListNames returns all registered converter names in registration order.
func (r *ConverterRegistry) ListNames() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Has reports whether a converter with the given name is registered.
func (r *ConverterRegistry) Has(name string) bool {
	_, ok := r.converters[name]
	return ok
}

// Unregister removes a converter by name, failing with apperrors.ErrNotFound
// when absent.
func (r *ConverterRegistry) Unregister(name string) error {
	if _, ok := r.converters[name]; !ok {
		return fmt.Errorf("%w: no converter named %q is registered", apperrors.ErrNotFound, name)
	}
	delete(r.converters, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes all registered converters.
func (r *ConverterRegistry) Clear() {
	r.converters = make(map[string]ports.Converter)
	r.order = nil
}

// DefaultRegistryOptions configures NewDefaultRegistry.
type DefaultRegistryOptions struct {
	RateAPIBaseURL string
	BaseCurrency   string
	RequestTimeout time.Duration
	RateTTL        time.Duration
	Logger         *slog.Logger
}

// NewDefaultRegistry builds a registry holding every built-in converter, with
// the currency converter wired to the live exchange rate endpoint.
func NewDefaultRegistry(opts DefaultRegistryOptions) (*ConverterRegistry, error) {
	base := opts.BaseCurrency
	if base == "" {
		base = BaseCurrency
	}
	source := exchangerate.NewClient(exchangerate.ClientOptions{
		BaseURL:      opts.RateAPIBaseURL,
		BaseCurrency: base,
		Codes:        SupportedCurrencies(),
		Timeout:      opts.RequestTimeout,
		Logger:       opts.Logger,
	})
	cache := NewRateCache(source, opts.RateTTL, nil, opts.Logger)

	registry := NewConverterRegistry()
	for _, converter := range []ports.Converter{
		NewLengthConverter(),
		NewWeightConverter(),
		NewTemperatureConverter(),
		NewDataSizeConverter(),
		NewBatteryConverter(),
		NewCurrencyConverter(cache, base),
	} {
		if err := registry.Register(converter); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
