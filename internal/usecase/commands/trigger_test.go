//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"promo-bonus-service/internal/domain/pool"
	"promo-bonus-service/internal/usecase/commands"
	commandsmock "promo-bonus-service/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var lowStock = []pool.ReplenishReason{pool.ReasonLowStock}

func TestAsyncReplenishTrigger_CoalescesPerDenomination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	var calls atomic.Int32
	replenish := commandsmock.NewMockReplenishCommands(ctrl)
	replenish.EXPECT().Replenish(gomock.Any(), pool.Denomination(100), 0).
		DoAndReturn(func(ctx context.Context, d pool.Denomination, _ int) (*commands.ReplenishResult, error) {
			calls.Add(1)
			<-release
			return &commands.ReplenishResult{Denomination: d}, nil
		}).Times(1)

	trigger := commands.NewAsyncReplenishTrigger(replenish, time.Minute, testLogger)
	trigger.Trigger(100, lowStock)
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	for range 4 {
		trigger.Trigger(100, lowStock)
	}
	// let the extra triggers reach the in-flight run before it finishes
	time.Sleep(50 * time.Millisecond)
	close(release)
	trigger.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestAsyncReplenishTrigger_CoalescedFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	var calls atomic.Int32
	replenish := commandsmock.NewMockReplenishCommands(ctrl)
	replenish.EXPECT().Replenish(gomock.Any(), pool.Denomination(100), 0).
		DoAndReturn(func(context.Context, pool.Denomination, int) (*commands.ReplenishResult, error) {
			calls.Add(1)
			<-release
			return nil, errors.New("producer down")
		}).Times(1)

	logger, logs := newCapturingLogger()
	trigger := commands.NewAsyncReplenishTrigger(replenish, time.Minute, logger)
	trigger.Trigger(100, lowStock)
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	for range 3 {
		trigger.Trigger(100, lowStock)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	trigger.Wait()

	assert.Equal(t, 1, logs.Count("background replenish failed"))
}

func TestAsyncReplenishTrigger_DenominationsRunIndependently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	replenish := commandsmock.NewMockReplenishCommands(ctrl)
	replenish.EXPECT().Replenish(gomock.Any(), pool.Denomination(100), 0).Return(&commands.ReplenishResult{}, nil).Times(1)
	replenish.EXPECT().Replenish(gomock.Any(), pool.Denomination(200), 0).Return(&commands.ReplenishResult{}, nil).Times(1)

	trigger := commands.NewAsyncReplenishTrigger(replenish, time.Minute, testLogger)
	trigger.Trigger(100, lowStock)
	trigger.Trigger(200, lowStock)
	trigger.Wait()
}

func TestAsyncReplenishTrigger_RunsDetachedWithTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var gotDeadline atomic.Bool
	replenish := commandsmock.NewMockReplenishCommands(ctrl)
	replenish.EXPECT().Replenish(gomock.Any(), pool.Denomination(100), 0).
		DoAndReturn(func(ctx context.Context, _ pool.Denomination, _ int) (*commands.ReplenishResult, error) {
			_, ok := ctx.Deadline()
			gotDeadline.Store(ok && ctx.Err() == nil)
			return nil, context.DeadlineExceeded
		}).Times(1)

	trigger := commands.NewAsyncReplenishTrigger(replenish, time.Minute, testLogger)
	trigger.Trigger(100, lowStock)
	trigger.Wait()

	assert.True(t, gotDeadline.Load())
}

func TestAsyncReplenishTrigger_Stop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	replenish := commandsmock.NewMockReplenishCommands(ctrl)
	replenish.EXPECT().Replenish(gomock.Any(), pool.Denomination(100), 0).
		DoAndReturn(func(context.Context, pool.Denomination, int) (*commands.ReplenishResult, error) {
			<-release
			return &commands.ReplenishResult{}, nil
		}).Times(1)

	trigger := commands.NewAsyncReplenishTrigger(replenish, time.Minute, testLogger)
	trigger.Trigger(100, lowStock)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, trigger.Stop(ctx), context.DeadlineExceeded)

	close(release)
	assert.NoError(t, trigger.Stop(context.Background()))
}
