package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Scale is one of the supported temperature scales.
type Scale int

const (
	Celsius Scale = iota
	Fahrenheit
	Kelvin
)

// ErrUnknownScale is returned when a scale name is not recognized.
var ErrUnknownScale = errors.New("unknown scale: must be Celsius, Fahrenheit, or Kelvin")

var scaleNames = [...]string{
	Celsius:    "Celsius",
	Fahrenheit: "Fahrenheit",
	Kelvin:     "Kelvin",
}

// Scales lists every scale in picker order.
func Scales() []Scale {
	return []Scale{Celsius, Fahrenheit, Kelvin}
}

// Valid reports whether s is a member of the enumeration.
func (s Scale) Valid() bool {
	return s >= Celsius && s <= Kelvin
}

func (s Scale) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Scale(%d)", int(s))
	}
	return scaleNames[s]
}

// ParseScale accepts the full name (any case) or the single-letter symbol.
func ParseScale(name string) (Scale, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "CELSIUS", "C":
		return Celsius, nil
	case "FAHRENHEIT", "F":
		return Fahrenheit, nil
	case "KELVIN", "K":
		return Kelvin, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScale, name)
}

func (s Scale) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScale, int(s))
	}
	return json.Marshal(s.String())
}

func (s *Scale) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, err := ParseScale(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
