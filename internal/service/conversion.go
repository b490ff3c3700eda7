package service

import (
	"context"
	"fmt"

	"temperature_converter/internal/converter"
	"temperature_converter/internal/metrics"
	"temperature_converter/internal/models"
)

// Recorder is the part of History a conversion needs.
type Recorder interface {
	Append(ctx context.Context, r models.ConversionRecord) (models.ConversionRecord, error)
}

type ConversionService struct {
	history Recorder
}

func NewConversionService(history Recorder) *ConversionService {
	return &ConversionService{history: history}
}

// Convert parses the input, converts and classifies it, and appends the
// result to the history. Invalid input returns converter.ErrInvalidInput and
// leaves the history untouched.
func (s *ConversionService) Convert(ctx context.Context, p ConvertParams) (Conversion, error) {
	if err := validateScales(p.From, p.To); err != nil {
		return Conversion{}, err
	}

	res, err := converter.Evaluate(p.Input, p.From, p.To)
	if err != nil {
		s.RejectInput()
		return Conversion{}, err
	}
	return s.Record(ctx, res)
}

// Record appends an already evaluated conversion to the history and counts it.
func (s *ConversionService) Record(ctx context.Context, res converter.Result) (Conversion, error) {
	rec, err := s.history.Append(ctx, res.Record)
	if err != nil {
		return Conversion{}, fmt.Errorf("record conversion: %w", err)
	}
	metrics.ConversionsTotal.WithLabelValues(rec.FromScale.String(), rec.ToScale.String()).Inc()

	return Conversion{Record: rec, Display: res.Display}, nil
}

// RejectInput counts a convert action whose input was not a number.
func (s *ConversionService) RejectInput() {
	metrics.InvalidInputTotal.Inc()
}

// Classify is converter.Classify; it never touches the history.
func (s *ConversionService) Classify(value float64, to models.Scale) models.Label {
	return converter.Classify(value, to)
}

func validateScales(scales ...models.Scale) error {
	for _, sc := range scales {
		if !sc.Valid() {
			return fmt.Errorf("%w: %d", models.ErrUnknownScale, int(sc))
		}
	}
	return nil
}
