package converter

import "temperature_converter/internal/models"

// Result is the outcome of one convert action before it reaches the history log.
type Result struct {
	Record  models.ConversionRecord
	Display string // single-result field text, see FormatResult
}

// Evaluate runs the whole pipeline for raw input text: parse, convert,
// classify and format. The returned record has no ID or timestamp yet.
func Evaluate(text string, from, to models.Scale) (Result, error) {
	value, err := ParseNumber(text)
	if err != nil {
		return Result{}, err
	}
	out := Convert(from, to, value)
	return Result{
		Record: models.ConversionRecord{
			InputValue:  value,
			FromScale:   from,
			OutputValue: out,
			ToScale:     to,
			Label:       Classify(out, to),
		},
		Display: FormatResult(out),
	}, nil
}
