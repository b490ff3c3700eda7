package service

import (
	"context"

	"temperature_converter/internal/converter"
	"temperature_converter/internal/models"
	"temperature_converter/internal/repository"
)

// Converter runs convert actions and pure classifications. Record and
// RejectInput book conversions evaluated elsewhere, such as in a session.
type Converter interface {
	Convert(ctx context.Context, p ConvertParams) (Conversion, error)
	Record(ctx context.Context, res converter.Result) (Conversion, error)
	RejectInput()
	Classify(value float64, to models.Scale) models.Label
}

// History exposes the append-only conversion log.
type History interface {
	Append(ctx context.Context, r models.ConversionRecord) (models.ConversionRecord, error)
	All(ctx context.Context) ([]models.ConversionRecord, error)
}

// Service aggregates the sub-services used by the HTTP and session layers.
type Service struct {
	Converter
	History
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	history := NewHistoryService(repos.History)
	return &Service{
		Converter: NewConversionService(history),
		History:   history,
	}
}
