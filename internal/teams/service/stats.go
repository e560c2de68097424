package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/metrics"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/store"
)

// StatsCollector periodically publishes a row census to the metrics gauges.
type StatsCollector struct {
	Store    store.Store
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewStatsCollector defaults a non-positive interval to one minute.
func NewStatsCollector(st store.Store, m *metrics.Metrics, logger *slog.Logger, interval time.Duration) *StatsCollector {
	if interval <= 0 {
		interval = time.Minute
	}
	return &StatsCollector{
		Store:    st,
		Metrics:  m,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the collector in the background until Stop.
func (s *StatsCollector) Start() {
	go s.run()
	s.Logger.Info("stats collector started", "interval", s.Interval)
}

// Stop blocks until an in-flight collection has finished.
func (s *StatsCollector) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("stats collector stopped")
}

func (s *StatsCollector) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Collect(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Collect(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Collect takes one census. Failures are logged and the previous values
// stay published.
func (s *StatsCollector) Collect(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	totals, err := s.Store.Stats().Totals(ctx)
	if err != nil {
		s.Logger.Error("failed to collect totals", "error", err)
		return
	}
	s.Metrics.ObserveTotals(totals)
	s.Logger.Debug("totals collected",
		"teams", totals.Teams,
		"members", totals.Members,
		"invites", totals.Invites,
	)
}
