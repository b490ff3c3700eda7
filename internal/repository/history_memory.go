package repository

import (
	"context"
	"sync"

	"temperature_converter/internal/models"
)

// HistoryMemory keeps the history in a slice for the life of the process.
type HistoryMemory struct {
	mu      sync.RWMutex
	records []models.ConversionRecord
}

var _ HistoryRepo = (*HistoryMemory)(nil)

func NewHistoryMemory() *HistoryMemory { return &HistoryMemory{} }

func (r *HistoryMemory) Append(ctx context.Context, rec models.ConversionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
	return nil
}

// List returns a copy so callers cannot reorder the log.
func (r *HistoryMemory) List(ctx context.Context) ([]models.ConversionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ConversionRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}
