package converter

import (
	"strconv"
	"strings"
)

// FormatResult renders a value for the single-result field: at most two
// decimals, trailing zeros and a dangling point dropped ("212", "98.6").
func FormatResult(value float64) string {
	s := strconv.FormatFloat(value, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
