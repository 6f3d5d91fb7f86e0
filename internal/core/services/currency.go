package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/quickconvert/quickconvert/internal/apperrors"
)

// BaseCurrency is the currency every conversion pivots through.
const BaseCurrency = "USD"

// currencyInfo pairs a currency code with its display name. Declaration order
// is the unit order shown to hosts.
type currencyInfo struct {
	code string
	name string
}

// SupportedCurrencies returns the configured currency codes in display order.
func SupportedCurrencies() []string {
	codes := make([]string, len(defaultCurrencies))
	for i, cur := range defaultCurrencies {
		codes[i] = cur.code
	}
	return codes
}

var defaultCurrencies = []currencyInfo{
	{"CNY", "Chinese Yuan"},
	{"USD", "US Dollar"},
	{"EUR", "Euro"},
	{"JPY", "Japanese Yen"},
	{"GBP", "British Pound"},
	{"KRW", "South Korean Won"},
	{"HKD", "Hong Kong Dollar"},
	{"AUD", "Australian Dollar"},
	{"CAD", "Canadian Dollar"},
	{"SGD", "Singapore Dollar"},
}

// CurrencyConverter converts between currencies through a cached rate table
// against BaseCurrency: value -> base -> target, so only one rate per
// currency is needed instead of a pairwise matrix.
//
// Unit labels are composite "CODE(Display Name)" strings; the code is the
// prefix before the first parenthesis.
type CurrencyConverter struct {
	cache *RateCache
	base  string
	units []string
	codes map[string]struct{}
}

// NewCurrencyConverter returns the currency converter backed by cache. The
// cache's rate table must be expressed against baseCurrency; an empty
// baseCurrency falls back to BaseCurrency.
func NewCurrencyConverter(cache *RateCache, baseCurrency string) *CurrencyConverter {
	if baseCurrency == "" {
		baseCurrency = BaseCurrency
	}
	units := make([]string, len(defaultCurrencies))
	codes := make(map[string]struct{}, len(defaultCurrencies))
	for i, cur := range defaultCurrencies {
		units[i] = fmt.Sprintf("%s(%s)", cur.code, cur.name)
		codes[cur.code] = struct{}{}
	}
	return &CurrencyConverter{cache: cache, base: baseCurrency, units: units, codes: codes}
}

func (c *CurrencyConverter) Name() string {
	return "Currency"
}

func (c *CurrencyConverter) Units() []string {
	out := make([]string, len(c.units))
	copy(out, c.units)
	return out
}

func (c *CurrencyConverter) ValidateUnit(unit string) error {
	if _, ok := c.codes[parseCurrencyCode(unit)]; ok {
		return nil
	}
	return fmt.Errorf("%w: %q is not supported by the %s converter, supported units: %s",
		apperrors.ErrUnsupportedUnit, unit, c.Name(), strings.Join(c.units, ", "))
}

func (c *CurrencyConverter) Convert(ctx context.Context, value float64, fromUnit, toUnit string) (float64, error) {
	if err := c.ValidateUnit(fromUnit); err != nil {
		return 0, err
	}
	if err := c.ValidateUnit(toUnit); err != nil {
		return 0, err
	}
	if fromUnit == toUnit {
		return value, nil
	}

	fromCode := parseCurrencyCode(fromUnit)
	toCode := parseCurrencyCode(toUnit)

	rates, err := c.cache.Rates(ctx)
	if err != nil {
		return 0, err
	}

	inBase := value
	if fromCode != c.base {
		inBase = value / rates[fromCode]
	}
	if toCode == c.base {
		return inBase, nil
	}
	return inBase * rates[toCode], nil
}

// parseCurrencyCode extracts the leading currency code from a composite unit
// label, e.g. "CNY(Chinese Yuan)" -> "CNY". Labels without a parenthesis are
// returned as-is.
func parseCurrencyCode(unit string) string {
	if i := strings.Index(unit, "("); i >= 0 {
		return unit[:i]
	}
	return unit
}
