package service

import (
	"context"
	"fmt"
	"time"

	"temperature_converter/internal/models"
	"temperature_converter/internal/repository"

	"github.com/google/uuid"
)

type HistoryService struct {
	repo repository.HistoryRepo
	now  func() time.Time
}

func NewHistoryService(repo repository.HistoryRepo) *HistoryService {
	return &HistoryService{repo: repo, now: time.Now}
}

// Append stamps the record with a fresh ID and UTC time and stores it at the
// end of the log. The stamped record is returned.
func (s *HistoryService) Append(ctx context.Context, r models.ConversionRecord) (models.ConversionRecord, error) {
	r.ID = uuid.NewString()
	r.CreatedAt = s.now().UTC()
	if err := s.repo.Append(ctx, r); err != nil {
		return models.ConversionRecord{}, fmt.Errorf("append history: %w", err)
	}
	return r, nil
}

// All returns the log oldest first.
func (s *HistoryService) All(ctx context.Context) ([]models.ConversionRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}
