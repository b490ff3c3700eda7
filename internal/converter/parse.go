package converter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InvalidInputMessage replaces the result when the entered text is not a number.
const InvalidInputMessage = "Invalid input. Please enter a valid number."

// ErrInvalidInput is the only failure of the conversion core.
var ErrInvalidInput = errors.New("invalid input")

// ParseError reports the text that could not be parsed.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q is not a valid number", ErrInvalidInput, e.Text)
}

func (e *ParseError) Unwrap() error { return ErrInvalidInput }

// ParseNumber parses a finite real number, ignoring surrounding whitespace.
func ParseNumber(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &ParseError{Text: text}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Text: text}
	}
	return v, nil
}
