package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Ticker is a periodic job, such as carousel autoplay.
type Ticker interface {
	Tick(ctx context.Context) error
}

type Scheduler struct {
	ticker   Ticker
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(ticker Ticker, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		ticker:   ticker,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runTick(ctx)
		}
	}
}

func (s *Scheduler) runTick(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if err := s.ticker.Tick(tickCtx); err != nil {
		s.logger.Error("tick failed", "error", err)
	}
}
