// Package service contains stats workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todotrack/internal/core/history"
	perr "todotrack/internal/platform/errors"
	"todotrack/internal/services/api/stats/domain"
	"todotrack/internal/services/api/stats/repo"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	repo repo.Repo
	now  func() time.Time
}

// New constructs a stats service; a nil repo means analytics are disabled
func New(r repo.Repo) *Svc { return &Svc{repo: r, now: time.Now} }

// WithClock replaces time.Now (tests)
func (s *Svc) WithClock(now func() time.Time) *Svc { s.now = now; return s }

// Daily returns per-day tracked time and edit counts for the last days days,
// today included. Days without activity are absent.
func (s *Svc) Daily(ctx context.Context, user uuid.UUID, days int) ([]domain.DailyRow, error) {
	if s.repo == nil {
		return nil, perr.Unavailablef("activity analytics are disabled")
	}
	if days < 1 || days > domain.MaxDays {
		return nil, perr.WithField(perr.InvalidArgf("days must be between 1 and %d", domain.MaxDays), "days")
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(days - 1))

	rows, err := s.repo.Daily(ctx, user, since)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "analytics query failed")
	}
	out := make([]domain.DailyRow, 0, len(rows))
	for _, r := range rows {
		secs := int64(r.Seconds)
		out = append(out, domain.DailyRow{
			Day:            r.Day,
			TrackedSeconds: secs,
			Tracked:        history.FormatDuration(secs),
			Intervals:      int64(r.Intervals),
			Edits:          int64(r.Edits),
			Completed:      int64(r.Completed),
		})
	}
	return out, nil
}
