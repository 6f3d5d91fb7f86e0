package utils

import (
	"fmt"
	"math"
)

// FormatResult formats a conversion result for display: 6 significant
// figures, switching to scientific notation when the magnitude drops below
// 1e-6 (where %g would otherwise lose the interesting digits).
// Example: 1234.5678 returns "1234.57"; 0.0000001234 returns "1.234000e-07".
func FormatResult(value float64) string {
	if value != 0 && math.Abs(value) < 0.000001 {
		return fmt.Sprintf("%.6e", value)
	}
	return fmt.Sprintf("%.6g", value)
}
