package services

import "github.com/quickconvert/quickconvert/internal/core/ports"

// NewDataSizeConverter returns the data size converter. Base unit: bit.
// The decimal-looking prefixes (KB, MB, ...) are deliberately binary-scaled,
// numerically identical to their IEC counterparts (KiB, MiB, ...).
func NewDataSizeConverter() ports.Converter {
	return newScaleConverter(
		"Data Size",
		[]string{"bit", "byte", "KB", "MB", "GB", "TB", "KiB", "MiB", "GiB", "TiB"},
		map[string]float64{
			"bit":  1.0,
			"byte": 8.0,
			"KB":   8192.0,
			"MB":   8388608.0,
			"GB":   8589934592.0,
			"TB":   8796093022208.0,
			"KiB":  8192.0,
			"MiB":  8388608.0,
			"GiB":  8589934592.0,
			"TiB":  8796093022208.0,
		},
	)
}
