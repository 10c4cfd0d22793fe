package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/padlockhq/padlock/internal/presets/store"
)

// RetentionService periodically purges generated-password records older
// than the configured retention so the log table cannot grow without bound.
// A zero retention disables purging entirely; the service still starts so
// the app lifecycle stays uniform.
type RetentionService struct {
	Store     store.Store
	Logger    *slog.Logger
	Retention time.Duration
	Interval  time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewRetentionService creates a retention worker. A non-positive interval
// defaults to 1 hour.
func NewRetentionService(
	st store.Store,
	logger *slog.Logger,
	retention, interval time.Duration,
) *RetentionService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &RetentionService{
		Store:     st,
		Logger:    logger,
		Retention: retention,
		Interval:  interval,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start launches the background worker. Non-blocking; call Stop to shut it
// down.
func (s *RetentionService) Start() {
	go s.run()
	s.Logger.Info("retention service started", "retention", s.Retention, "interval", s.Interval)
}

// Stop shuts the worker down, blocking until any in-progress sweep ends.
func (s *RetentionService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("retention service stopped")
}

func (s *RetentionService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Sweep(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep deletes records older than the retention window. Exported so tests
// and admin tooling can trigger a sweep directly.
func (s *RetentionService) Sweep(ctx context.Context) {
	if s.Retention <= 0 {
		return
	}

	cutoff := time.Now().UTC().Add(-s.Retention)
	deleted, err := s.Store.GeneratedPasswords().DeleteGeneratedPasswordsBefore(ctx, cutoff)
	if err != nil {
		s.Logger.Error("retention sweep failed", "error", err)
		return
	}

	if deleted > 0 {
		s.Logger.Info("retention sweep completed", "deleted", deleted, "cutoff", cutoff)
	}
}
