package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/quickconvert/quickconvert/internal/apperrors"
	"github.com/quickconvert/quickconvert/internal/core/ports"
)

// TemperatureConverter converts between Celsius, Fahrenheit and Kelvin.
// Temperature scales have offsets, so there is no linear factor table; every
// conversion goes through Celsius via two dedicated half-formulas.
type TemperatureConverter struct {
	units []string
}

// NewTemperatureConverter returns the temperature converter.
func NewTemperatureConverter() ports.Converter {
	return &TemperatureConverter{units: []string{"C", "F", "K"}}
}

func (c *TemperatureConverter) Name() string {
	return "Temperature"
}

func (c *TemperatureConverter) Units() []string {
	out := make([]string, len(c.units))
	copy(out, c.units)
	return out
}

func (c *TemperatureConverter) ValidateUnit(unit string) error {
	for _, u := range c.units {
		if u == unit {
			return nil
		}
	}
	return fmt.Errorf("%w: %q is not supported by the %s converter, supported units: %s",
		apperrors.ErrUnsupportedUnit, unit, c.Name(), strings.Join(c.units, ", "))
}

func (c *TemperatureConverter) Convert(_ context.Context, value float64, fromUnit, toUnit string) (float64, error) {
	if err := c.ValidateUnit(fromUnit); err != nil {
		return 0, err
	}
	if err := c.ValidateUnit(toUnit); err != nil {
		return 0, err
	}
	if fromUnit == toUnit {
		return value, nil
	}
	return fromCelsius(toCelsius(value, fromUnit), toUnit), nil
}

func toCelsius(value float64, fromUnit string) float64 {
	switch fromUnit {
	case "F":
		return (value - 32) * 5 / 9
	case "K":
		return value - 273.15
	default: // "C"
		return value
	}
}

func fromCelsius(celsius float64, toUnit string) float64 {
	switch toUnit {
	case "F":
		return celsius*9/5 + 32
	case "K":
		return celsius + 273.15
	default: // "C"
		return celsius
	}
}
