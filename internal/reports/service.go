package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/bodega-pos/bodega-pos/internal/shared"
)

// Service answers reporting queries over committed sales.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Summary aggregates the period [from, to]. Zero values default to the
// current day.
func (s *Service) Summary(ctx context.Context, from, to time.Time) (Summary, error) {
	if from.IsZero() && to.IsZero() {
		now := time.Now()
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		to = from.AddDate(0, 0, 1)
	}
	if to.IsZero() {
		to = time.Now()
	}
	if from.After(to) {
		return Summary{}, fmt.Errorf("%w: from must not be after to", shared.ErrValidation)
	}
	return s.repo.Summarize(ctx, from, to)
}
