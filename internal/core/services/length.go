package services

import "github.com/quickconvert/quickconvert/internal/core/ports"

// NewLengthConverter returns the length converter. Base unit: meter.
func NewLengthConverter() ports.Converter {
	return newScaleConverter(
		"Length",
		[]string{"m", "km", "cm", "mm", "mile", "yard", "ft", "inch"},
		map[string]float64{
			"m":    1.0,
			"km":   1000.0,
			"cm":   0.01,
			"mm":   0.001,
			"mile": 1609.344,
			"yard": 0.9144,
			"ft":   0.3048,
			"inch": 0.0254,
		},
	)
}
