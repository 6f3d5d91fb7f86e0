package services

import "github.com/quickconvert/quickconvert/internal/core/ports"

// NewWeightConverter returns the weight/mass converter. Base unit: kilogram.
func NewWeightConverter() ports.Converter {
	return newScaleConverter(
		"Weight",
		[]string{"kg", "g", "mg", "ton", "lb", "oz"},
		map[string]float64{
			"kg":  1.0,
			"g":   0.001,
			"mg":  0.000001,
			"ton": 1000.0,
			"lb":  0.45359237,
			"oz":  0.028349523125,
		},
	)
}
