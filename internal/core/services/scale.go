package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/quickconvert/quickconvert/internal/apperrors"
)

// scaleConverter implements conversion through a single base unit: every unit
// carries a factor expressing how many base units it equals, so an n-unit
// domain needs n factors instead of n² pairwise rates.
type scaleConverter struct {
	name   string
	units  []string
	toBase map[string]float64
}

func newScaleConverter(name string, units []string, toBase map[string]float64) *scaleConverter {
	return &scaleConverter{name: name, units: units, toBase: toBase}
}

func (c *scaleConverter) Name() string {
	return c.name
}

func (c *scaleConverter) Units() []string {
	out := make([]string, len(c.units))
	copy(out, c.units)
	return out
}

func (c *scaleConverter) ValidateUnit(unit string) error {
	if _, ok := c.toBase[unit]; !ok {
		return fmt.Errorf("%w: %q is not supported by the %s converter, supported units: %s",
			apperrors.ErrUnsupportedUnit, unit, c.name, strings.Join(c.units, ", "))
	}
	return nil
}

func (c *scaleConverter) Convert(_ context.Context, value float64, fromUnit, toUnit string) (float64, error) {
	if err := c.ValidateUnit(fromUnit); err != nil {
		return 0, err
	}
	if err := c.ValidateUnit(toUnit); err != nil {
		return 0, err
	}
	if fromUnit == toUnit {
		return value, nil
	}
	base := value * c.toBase[fromUnit]
	return base / c.toBase[toUnit], nil
}
