package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bodega-pos/bodega-pos/internal/shared"
)

type stubRepo struct {
	from, to time.Time
	summary  Summary
}

func (s *stubRepo) Summarize(ctx context.Context, from, to time.Time) (Summary, error) {
	s.from, s.to = from, to
	out := s.summary
	out.From, out.To = from, to
	return out, nil
}

func TestSummaryDefaultsToToday(t *testing.T) {
	repo := &stubRepo{summary: Summary{SaleCount: 3, GrossTotal: 90}}
	svc := NewService(repo)

	summary, err := svc.Summary(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Equal(t, int64(3), summary.SaleCount)

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	require.Equal(t, midnight, repo.from)
	require.Equal(t, midnight.AddDate(0, 0, 1), repo.to)
}

func TestSummaryRejectsInvertedPeriod(t *testing.T) {
	svc := NewService(&stubRepo{})
	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	_, err := svc.Summary(context.Background(), from, to)
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestSummaryOpenEndedPeriod(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Summary(context.Background(), from, time.Time{})
	require.NoError(t, err)
	require.Equal(t, from, repo.from)
	require.False(t, repo.to.IsZero())
}
