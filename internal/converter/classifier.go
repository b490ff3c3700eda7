package converter

import "temperature_converter/internal/models"

// thresholds are the lower bounds of the chilly, warm and hot buckets.
type thresholds struct {
	chilly, warm, hot float64
}

var (
	fahrenheitThresholds = thresholds{chilly: 32, warm: 68, hot: 86}
	kelvinThresholds     = thresholds{chilly: 273.15, warm: 293.15, hot: 303.15}
)

// Classify returns the comfort label for a converted value. Celsius has no
// thresholds and always yields LabelNone.
func Classify(value float64, to models.Scale) models.Label {
	switch to {
	case models.Fahrenheit:
		return fahrenheitThresholds.bucket(value)
	case models.Kelvin:
		return kelvinThresholds.bucket(value)
	default:
		return models.LabelNone
	}
}

// bucket applies inclusive lower bounds; the hot bucket is unbounded above.
func (t thresholds) bucket(value float64) models.Label {
	switch {
	case value < t.chilly:
		return models.LabelVeryCold
	case value < t.warm:
		return models.LabelChilly
	case value < t.hot:
		return models.LabelWarm
	default:
		return models.LabelHot
	}
}
