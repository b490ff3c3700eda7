package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Label is the comfort message shown next to a converted value.
type Label string

const (
	LabelNone     Label = ""
	LabelVeryCold Label = "It's very cold!"
	LabelChilly   Label = "It's chilly."
	LabelWarm     Label = "It's warm."
	LabelHot      Label = "It's hot!"
)

// ConversionRecord is a single history entry. It is never mutated once appended.
type ConversionRecord struct {
	ID          string    `json:"id"`
	InputValue  float64   `json:"input_value"`
	FromScale   Scale     `json:"from_scale"`
	OutputValue float64   `json:"output_value"`
	ToScale     Scale     `json:"to_scale"`
	Label       Label     `json:"label"`
	CreatedAt   time.Time `json:"created_at"`
}

// String renders the record the way the history list shows it,
// e.g. "100.00 Celsius to 212.00 Fahrenheit". Values are rounded half away
// from zero on their shortest decimal form, so 1.005 shows as 1.01.
func (r ConversionRecord) String() string {
	return fmt.Sprintf("%s %s to %s %s", fixed2(r.InputValue), r.FromScale, fixed2(r.OutputValue), r.ToScale)
}

func fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
