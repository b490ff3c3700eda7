// Package converter holds the pure temperature arithmetic: scale conversion,
// comfort classification, input parsing and result formatting.
package converter

import (
	"fmt"

	"temperature_converter/internal/models"
)

// Offsets used by the linear formulas.
const (
	kelvinOffset     = 273.15
	fahrenheitOffset = 32.0
	rankineOffset    = 459.67
)

// Convert maps value from one scale to another. Identical scales return
// value untouched. Negative Kelvin is not rejected.
func Convert(from, to models.Scale, value float64) float64 {
	if from == to {
		return value
	}

	switch from {
	case models.Celsius:
		switch to {
		case models.Fahrenheit:
			return value*9/5 + fahrenheitOffset
		case models.Kelvin:
			return value + kelvinOffset
		}
	case models.Fahrenheit:
		switch to {
		case models.Celsius:
			return (value - fahrenheitOffset) * 5 / 9
		case models.Kelvin:
			return (value + rankineOffset) * 5 / 9
		}
	case models.Kelvin:
		switch to {
		case models.Celsius:
			return value - kelvinOffset
		case models.Fahrenheit:
			return value*9/5 - rankineOffset
		}
	}

	// Scales only come from models.ParseScale, so this is a caller bug.
	panic(fmt.Sprintf("converter: unsupported scale pair %s -> %s", from, to))
}
