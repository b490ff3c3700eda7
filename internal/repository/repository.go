package repository

import (
	"context"
	"database/sql"

	"temperature_converter/internal/models"
)

// HistoryRepo is the append-only store behind the conversion history.
// Implementations must return records in insertion order and be safe for
// concurrent use.
type HistoryRepo interface {
	Append(ctx context.Context, r models.ConversionRecord) error
	List(ctx context.Context) ([]models.ConversionRecord, error)
}

// Backend names accepted by NewRepository.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type Repository struct {
	History HistoryRepo
}

// NewRepository uses the sqlite store when db is non-nil, the in-process slice otherwise.
func NewRepository(db *sql.DB) *Repository {
	if db == nil {
		return &Repository{History: NewHistoryMemory()}
	}
	return &Repository{History: NewHistorySQLite(db)}
}
