package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/verdantmarket/farmstand/internal/clock"
	"github.com/verdantmarket/farmstand/internal/repository"
	"github.com/verdantmarket/farmstand/internal/scheduler"
	mock_scheduler "github.com/verdantmarket/farmstand/internal/scheduler/mocks"
)

func TestScheduler_Trigger(t *testing.T) {
	ctx := context.Background()

	t.Run("locks baskets and resets stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		market := mock_scheduler.NewMockMarket(ctrl)
		clk := clock.NewVirtual(time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC))
		s := scheduler.New(market, clk, zap.NewNop())

		market.EXPECT().ResetStock(gomock.Any()).Return(nil)
		market.EXPECT().LockBaskets(gomock.Any()).Return(int64(12), nil)
		market.EXPECT().EnqueueMarketEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p repository.MarketEventPayload) error {
				assert.Equal(t, "cycle_closed", p.Action)
				assert.Equal(t, int64(12), p.LockedOrders)
				return nil
			})

		require.NoError(t, s.Trigger(ctx, false))
	})

	t.Run("controlled trigger advances the virtual clock a full week", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		market := mock_scheduler.NewMockMarket(ctrl)
		// Exactly Sunday 23:00: the next fire is one whole week out.
		start := time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC)
		clk := clock.NewVirtual(start)
		s := scheduler.New(market, clk, zap.NewNop())

		market.EXPECT().ResetStock(gomock.Any()).Return(nil)
		market.EXPECT().LockBaskets(gomock.Any()).Return(int64(0), nil)
		market.EXPECT().EnqueueMarketEvent(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, s.Trigger(ctx, true))
		assert.Equal(t, start.AddDate(0, 0, 7), clk.Now())
	})

	t.Run("controlled trigger mid-week jumps to the coming Sunday", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		market := mock_scheduler.NewMockMarket(ctrl)
		clk := clock.NewVirtual(time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC))
		s := scheduler.New(market, clk, zap.NewNop())

		market.EXPECT().ResetStock(gomock.Any()).Return(nil)
		market.EXPECT().LockBaskets(gomock.Any()).Return(int64(3), nil)
		market.EXPECT().EnqueueMarketEvent(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, s.Trigger(ctx, true))
		assert.Equal(t, time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC), clk.Now())
	})

	t.Run("rollover failure leaves the clock alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		market := mock_scheduler.NewMockMarket(ctrl)
		start := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
		clk := clock.NewVirtual(start)
		s := scheduler.New(market, clk, zap.NewNop())

		boom := errors.New("deadlock detected")
		market.EXPECT().ResetStock(gomock.Any()).Return(boom)
		market.EXPECT().LockBaskets(gomock.Any()).Return(int64(0), nil).AnyTimes()

		err := s.Trigger(ctx, true)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, start, clk.Now())
	})

	t.Run("lost market event does not fail the rollover", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		market := mock_scheduler.NewMockMarket(ctrl)
		clk := clock.NewVirtual(time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC))
		s := scheduler.New(market, clk, zap.NewNop())

		market.EXPECT().ResetStock(gomock.Any()).Return(nil)
		market.EXPECT().LockBaskets(gomock.Any()).Return(int64(1), nil)
		market.EXPECT().EnqueueMarketEvent(gomock.Any(), gomock.Any()).
			Return(errors.New("outbox insert failed"))

		assert.NoError(t, s.Trigger(ctx, false))
	})
}
