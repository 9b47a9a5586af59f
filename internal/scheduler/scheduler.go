// Package scheduler runs the periodic background jobs for the PackPal API.
// Currently that is a single job: refreshing the stored weather snapshot of
// every trip that has not yet ended.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// WeatherRefresher is the single operation the scheduler drives.
// Implemented by service.TripService.
type WeatherRefresher interface {
	RefreshWeather(ctx context.Context) error
}

// jobTimeout bounds one refresh run so a hung provider cannot pile up
// overlapping runs.
const jobTimeout = 5 * time.Minute

// Scheduler owns the cron runner. Construct with New, then Start/Stop around
// the server lifecycle.
type Scheduler struct {
	cron    *cron.Cron
	refresh WeatherRefresher
	logger  *slog.Logger
}

// New builds a Scheduler that runs the weather refresh on the given cron
// spec (standard 5-field syntax, e.g. "0 */6 * * *").
func New(spec string, refresh WeatherRefresher, logger *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		refresh: refresh,
		logger:  logger,
	}

	if _, err := s.cron.AddFunc(spec, s.runRefresh); err != nil {
		return nil, fmt.Errorf("scheduler.New: invalid cron spec %q: %w", spec, err)
	}
	return s, nil
}

// Start begins running jobs on their schedule. Non-blocking.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started")
}

// Stop halts the schedule and waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.refresh.RefreshWeather(ctx); err != nil {
		s.logger.Error("scheduled weather refresh failed", "error", err)
	}
}
