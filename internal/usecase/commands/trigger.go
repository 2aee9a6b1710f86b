package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"promo-bonus-service/internal/domain/pool"

	"golang.org/x/sync/singleflight"
)

// AsyncReplenishTrigger runs Replenish on a detached goroutine. Triggers for a
// denomination that already has a run in flight join that run instead of
// starting another.
type AsyncReplenishTrigger struct {
	replenish ReplenishCommands
	timeout   time.Duration
	group     singleflight.Group
	wg        sync.WaitGroup
	logger    *slog.Logger
}

func NewAsyncReplenishTrigger(replenish ReplenishCommands, timeout time.Duration, logger *slog.Logger) *AsyncReplenishTrigger {
	return &AsyncReplenishTrigger{
		replenish: replenish,
		timeout:   timeout,
		logger:    logger,
	}
}

func (t *AsyncReplenishTrigger) Trigger(d pool.Denomination, reasons []pool.ReplenishReason) {
	t.logger.Info("replenish triggered",
		"denomination", d.Int(),
		"reasons", reasons)

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		// Joined triggers share the leader's error; it is logged once, by the leader.
		_, _, _ = t.group.Do(d.String(), func() (any, error) {
			// Detached from the request: the caller has already returned.
			ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
			defer cancel()
			res, err := t.replenish.Replenish(ctx, d, 0)
			if err != nil {
				t.logger.Error("background replenish failed",
					"denomination", d.Int(),
					"error", err)
			}
			return res, err
		})
	}()
}

// Wait blocks until every triggered run has finished.
func (t *AsyncReplenishTrigger) Wait() {
	t.wg.Wait()
}

// Stop waits for in-flight runs or gives up when ctx ends.
func (t *AsyncReplenishTrigger) Stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
