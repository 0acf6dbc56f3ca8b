package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/verdantmarket/farmstand/internal/clock"
	"github.com/verdantmarket/farmstand/internal/metrics"
	"github.com/verdantmarket/farmstand/internal/repository"
	"github.com/verdantmarket/farmstand/internal/window"
)

//go:generate mockgen -source scheduler.go -destination mocks/scheduler.go -package mock_scheduler

// Market is the slice of the storage facade the weekly rollover needs.
type Market interface {
	ResetStock(ctx context.Context) error
	LockBaskets(ctx context.Context) (int64, error)
	EnqueueMarketEvent(ctx context.Context, payload repository.MarketEventPayload) error
}

// Scheduler closes the weekly cycle every Sunday 23:00: open baskets are
// locked and product counters reset, concurrently. Both operations are
// idempotent, so a manual Trigger racing the timer is harmless.
type Scheduler struct {
	market Market
	clk    clock.Clock
	logger *zap.Logger
}

func New(market Market, clk clock.Clock, logger *zap.Logger) *Scheduler {
	return &Scheduler{market: market, clk: clk, logger: logger}
}

// Run fires the rollover on schedule until ctx is cancelled. The wait is
// recomputed from the clock each cycle, so a virtual clock moved by a
// controlled trigger shifts the next fire accordingly.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		now := s.clk.Now()
		wait := window.NextRollover(now).Sub(now)
		s.logger.Info("Scheduler armed", zap.Duration("next_fire_in", wait))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			if err := s.Trigger(ctx, false); err != nil {
				s.logger.Error("Weekly rollover failed", zap.Error(err))
			}
		}
	}
}

// Trigger performs one rollover immediately. In controlled mode the
// virtual clock jumps to the next fire instant, so a sequence of
// controlled triggers steps through consecutive weeks.
func (s *Scheduler) Trigger(ctx context.Context, controlled bool) error {
	now := s.clk.Now()

	var locked int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.market.ResetStock(gctx)
	})
	g.Go(func() error {
		n, err := s.market.LockBaskets(gctx)
		locked = n
		return err
	})
	if err := g.Wait(); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("rollover").Inc()
		return fmt.Errorf("failed to close weekly cycle: %w", err)
	}

	next := window.NextRollover(now)
	if controlled {
		if v, ok := s.clk.(*clock.Virtual); ok {
			v.Set(next)
		}
	}

	metrics.CyclesClosedTotal.Inc()
	metrics.OrdersLockedTotal.Add(float64(locked))
	s.logger.Info("Weekly cycle closed",
		zap.Int64("locked_orders", locked),
		zap.Time("next_cycle_at", next),
		zap.Bool("controlled", controlled),
	)

	if err := s.market.EnqueueMarketEvent(ctx, repository.MarketEventPayload{
		Timestamp:    now.UTC(),
		Action:       "cycle_closed",
		LockedOrders: locked,
		NextCycleAt:  next.UTC(),
	}); err != nil {
		// The rollover itself succeeded; only the event is lost.
		s.logger.Error("Failed to enqueue market event", zap.Error(err))
	}
	return nil
}
