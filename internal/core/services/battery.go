package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/quickconvert/quickconvert/internal/apperrors"
	"github.com/quickconvert/quickconvert/internal/core/ports"
	"github.com/quickconvert/quickconvert/internal/models"
)

const defaultVoltage = 3.7 // lithium-cell nominal

// BatteryConverter converts battery capacity across two disjoint unit
// families: charge (mAh, Ah) and energy (Wh, kWh). Within a family it scales
// through the family base (mAh, Wh); across families it bridges via the
// voltage parameter (energy = charge × voltage).
type BatteryConverter struct {
	chargeToMah map[string]float64
	energyToWh  map[string]float64
	units       []string
}

// NewBatteryConverter returns the battery capacity converter.
func NewBatteryConverter() ports.ParameterizedConverter {
	return &BatteryConverter{
		chargeToMah: map[string]float64{"mAh": 1.0, "Ah": 1000.0},
		energyToWh:  map[string]float64{"Wh": 1.0, "kWh": 1000.0},
		units:       []string{"mAh", "Ah", "Wh", "kWh"},
	}
}

func (c *BatteryConverter) Name() string {
	return "Battery"
}

func (c *BatteryConverter) Units() []string {
	out := make([]string, len(c.units))
	copy(out, c.units)
	return out
}

func (c *BatteryConverter) Parameters() map[string]models.ParamSpec {
	return map[string]models.ParamSpec{
		"voltage": {
			Label:    "Voltage (V)",
			Default:  strconv.FormatFloat(defaultVoltage, 'g', -1, 64),
			Required: true,
		},
	}
}

func (c *BatteryConverter) ValidateUnit(unit string) error {
	if _, ok := c.chargeToMah[unit]; ok {
		return nil
	}
	if _, ok := c.energyToWh[unit]; ok {
		return nil
	}
	return fmt.Errorf("%w: %q is not supported by the %s converter, supported units: %s",
		apperrors.ErrUnsupportedUnit, unit, c.Name(), strings.Join(c.units, ", "))
}

// Convert converts with the default voltage.
func (c *BatteryConverter) Convert(ctx context.Context, value float64, fromUnit, toUnit string) (float64, error) {
	return c.ConvertWithParams(ctx, value, fromUnit, toUnit, nil)
}

func (c *BatteryConverter) ConvertWithParams(_ context.Context, value float64, fromUnit, toUnit string, params map[string]float64) (float64, error) {
	if err := c.ValidateUnit(fromUnit); err != nil {
		return 0, err
	}
	if err := c.ValidateUnit(toUnit); err != nil {
		return 0, err
	}
	if fromUnit == toUnit {
		return value, nil
	}

	voltage := defaultVoltage
	if v, ok := params["voltage"]; ok {
		voltage = v
	}
	if voltage <= 0 {
		return 0, fmt.Errorf("%w: voltage must be positive, got %gV", apperrors.ErrInvalidParameter, voltage)
	}

	_, fromCharge := c.chargeToMah[fromUnit]
	_, toCharge := c.chargeToMah[toUnit]

	switch {
	case fromCharge && toCharge:
		return value * c.chargeToMah[fromUnit] / c.chargeToMah[toUnit], nil
	case !fromCharge && !toCharge:
		return value * c.energyToWh[fromUnit] / c.energyToWh[toUnit], nil
	case fromCharge:
		// charge -> Ah, bridge to Wh via voltage, then to target energy unit.
		ah := value * c.chargeToMah[fromUnit] / 1000
		return ah * voltage / c.energyToWh[toUnit], nil
	default:
		// energy -> Wh, bridge to Ah via voltage, then to target charge unit.
		wh := value * c.energyToWh[fromUnit]
		return wh / voltage * 1000 / c.chargeToMah[toUnit], nil
	}
}
