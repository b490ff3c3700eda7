package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"temperature_converter/internal/models"

	"github.com/google/uuid"
)

type HistorySQLite struct {
	db *sql.DB
}

var _ HistoryRepo = (*HistorySQLite)(nil)

func NewHistorySQLite(db *sql.DB) *HistorySQLite { return &HistorySQLite{db: db} }

const (
	insertRecordSQL = `
		INSERT INTO conversion_history (id, input_value, from_scale, output_value, to_scale, label, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	// seq is the insertion order; created_at may tie within a clock tick.
	selectRecordsSQL = `
		SELECT id, input_value, from_scale, output_value, to_scale, label, created_at
		FROM conversion_history ORDER BY seq ASC
	`
)

// Append inserts a record. Empty ID and zero CreatedAt are filled in.
func (r *HistorySQLite) Append(ctx context.Context, rec models.ConversionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, insertRecordSQL,
		rec.ID,
		rec.InputValue,
		rec.FromScale.String(),
		rec.OutputValue,
		rec.ToScale.String(),
		string(rec.Label),
		rec.CreatedAt.UTC().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert conversion %s: %w", rec.ID, err)
	}
	return nil
}

// List returns every record, oldest first.
func (r *HistorySQLite) List(ctx context.Context) ([]models.ConversionRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectRecordsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.ConversionRecord, 0, 64)
	for rows.Next() {
		var (
			rec      models.ConversionRecord
			from, to string
			label    string
			created  int64
		)
		if err := rows.Scan(&rec.ID, &rec.InputValue, &from, &rec.OutputValue, &to, &label, &created); err != nil {
			return nil, err
		}
		if rec.FromScale, err = models.ParseScale(from); err != nil {
			return nil, fmt.Errorf("record %s: %w", rec.ID, err)
		}
		if rec.ToScale, err = models.ParseScale(to); err != nil {
			return nil, fmt.Errorf("record %s: %w", rec.ID, err)
		}
		rec.Label = models.Label(label)
		rec.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
