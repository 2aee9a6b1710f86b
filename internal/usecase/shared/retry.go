package shared

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"promo-bonus-service/internal/infra"
	"promo-bonus-service/internal/pkg/config"
	"promo-bonus-service/internal/pkg/errs"

	"github.com/ecodeclub/ekit/retry"
)

// RetryPolicy bounds the read-modify-write loop run against the object store.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

func NewRetryPolicy(cfg config.RetryConfig) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: cfg.MaxAttempts,
		BaseDelay:   cfg.BaseDelay,
		MaxDelay:    cfg.MaxDelay,
	}
}

// RunWithRetry calls fn until it succeeds, fails with something other than a
// version conflict, or MaxAttempts is reached. fn must re-read everything it
// writes: each attempt starts from fresh state. Exhaustion is marked ErrBusy,
// a failing backend ErrStoreFailure.
func RunWithRetry[T any](ctx context.Context, policy RetryPolicy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	maxAttempts := max(policy.MaxAttempts, 1)
	strategy, err := retry.NewExponentialBackoffRetryStrategy(
		max(policy.BaseDelay, time.Millisecond),
		max(policy.MaxDelay, policy.BaseDelay, time.Millisecond),
		int32(maxAttempts),
	)
	if err != nil {
		return zero, errs.Wrap(err, "invalid retry policy")
	}

	for attempt := 1; ; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		if infra.IsKind(err, infra.KindStoreFailure) {
			return zero, errs.Mark(err, errs.ErrStoreFailure)
		}
		if !infra.IsKind(err, infra.KindConflict) {
			return zero, err
		}

		if attempt >= maxAttempts {
			slog.Warn("optimistic retries exhausted",
				"op", op,
				"attempts", attempt,
				"error", err)
			return zero, errs.Mark(errs.Wrap(err, op), errs.ErrBusy)
		}

		next, ok := strategy.Next()
		if !ok {
			return zero, errs.Mark(errs.Wrap(err, op), errs.ErrBusy)
		}
		wait := jitter(next)
		slog.Debug("retrying after version conflict",
			"op", op,
			"attempt", attempt,
			"wait_time", wait)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// jitter spreads retries of racing writers over [d/2, d).
func jitter(d time.Duration) time.Duration {
	half := d / 2
	if half <= 0 {
		return d
	}
	return half + rand.N(half)
}
