// Package session models one interactive converter window: the pending input
// text, the selected scales and what the window currently shows. Every user
// action is a pure transition Reduce(state, event) -> (state', render).
package session

import (
	"errors"
	"fmt"

	"temperature_converter/internal/converter"
	"temperature_converter/internal/models"
)

// ErrInvalidEvent is returned for unknown event types or malformed values.
var ErrInvalidEvent = errors.New("invalid session event")

// EventType names a user action.
type EventType string

const (
	EventDigit   EventType = "digit"   // keypad digit appended to the input
	EventClear   EventType = "clear"   // keypad Clear
	EventInput   EventType = "input"   // input field replaced by typing
	EventFrom    EventType = "from"    // source scale picked
	EventTo      EventType = "to"      // target scale picked
	EventConvert EventType = "convert" // Convert pressed
)

// Event is one user action.
type Event struct {
	Type  EventType `json:"type"`
	Value string    `json:"value,omitempty"`
}

// State is everything the window shows.
type State struct {
	Input   string       `json:"input"`
	From    models.Scale `json:"from"`
	To      models.Scale `json:"to"`
	Output  string       `json:"output"`
	Message models.Label `json:"message"`
}

// New returns the state of a freshly opened window. Both pickers start on
// their first entry.
func New() State {
	return State{From: models.Celsius, To: models.Celsius}
}

// Render tells the presentation layer what to draw after a transition.
// Record is set only when a conversion succeeded and must be appended to the
// history log by the caller.
type Render struct {
	State  State                    `json:"state"`
	Record *models.ConversionRecord `json:"record,omitempty"`
}

// Reduce applies e to s. On error s is returned unchanged.
func Reduce(s State, e Event) (State, Render, error) {
	switch e.Type {
	case EventDigit:
		if len(e.Value) != 1 || e.Value[0] < '0' || e.Value[0] > '9' {
			return s, Render{State: s}, fmt.Errorf("%w: digit %q", ErrInvalidEvent, e.Value)
		}
		s.Input += e.Value
	case EventClear:
		s.Input = ""
	case EventInput:
		s.Input = e.Value
	case EventFrom, EventTo:
		scale, err := models.ParseScale(e.Value)
		if err != nil {
			return s, Render{State: s}, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
		}
		if e.Type == EventFrom {
			s.From = scale
		} else {
			s.To = scale
		}
	case EventConvert:
		return convert(s)
	default:
		return s, Render{State: s}, fmt.Errorf("%w: type %q", ErrInvalidEvent, e.Type)
	}
	return s, Render{State: s}, nil
}

// convert shows either the result and its label or the invalid-input message
// with the label cleared.
func convert(s State) (State, Render, error) {
	res, err := converter.Evaluate(s.Input, s.From, s.To)
	if err != nil {
		s.Output = converter.InvalidInputMessage
		s.Message = models.LabelNone
		return s, Render{State: s}, nil
	}
	s.Output = res.Display
	s.Message = res.Record.Label
	rec := res.Record
	return s, Render{State: s, Record: &rec}, nil
}
