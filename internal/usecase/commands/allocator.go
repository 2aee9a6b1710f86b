package commands

//go:generate mockgen -source=allocator.go -destination=../../../tests/mock/commands/allocator.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"promo-bonus-service/internal/domain/pool"
	"promo-bonus-service/internal/infra"
	"promo-bonus-service/internal/infra/metrics"
	"promo-bonus-service/internal/pkg/config"
	"promo-bonus-service/internal/pkg/errs"
	"promo-bonus-service/internal/usecase/shared"
)

type AllocateResult struct {
	Code               pool.Code
	Denomination       pool.Denomination
	Remaining          int
	ReplenishTriggered bool
}

type CodeCommands interface {
	Allocate(ctx context.Context, d pool.Denomination) (*AllocateResult, error)
}

type codeUseCaseImpl struct {
	pools      PoolRepository
	trigger    ReplenishTrigger
	thresholds pool.Thresholds
	retry      shared.RetryPolicy
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCodeCommands(
	pools PoolRepository,
	trigger ReplenishTrigger,
	poolCfg config.PoolConfig,
	retry shared.RetryPolicy,
	m *metrics.Metrics,
	logger *slog.Logger,
) CodeCommands {
	return &codeUseCaseImpl{
		pools:   pools,
		trigger: trigger,
		thresholds: pool.Thresholds{
			MinCodes: poolCfg.MinCodesThreshold,
			Batch:    poolCfg.BatchThreshold,
		},
		retry:   retry,
		metrics: m,
		logger:  logger,
	}
}

type allocation struct {
	code      pool.Code
	remaining int
	replenish bool
	reasons   []pool.ReplenishReason
}

// Allocate removes one code from the pool of d. Removal and the conditional
// write happen against the same version, so two callers never get the same code.
func (uc *codeUseCaseImpl) Allocate(ctx context.Context, d pool.Denomination) (*AllocateResult, error) {
	got, err := shared.RunWithRetry(ctx, uc.retry, "allocate", func(ctx context.Context) (allocation, error) {
		p, version, err := uc.pools.Load(ctx, d)
		if err != nil {
			return allocation{}, err
		}

		code, err := p.Take()
		if errors.Is(err, pool.ErrEmpty) {
			return allocation{}, errs.Mark(err, errs.ErrNoStock)
		}

		if _, err := uc.pools.Save(ctx, p, version); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				uc.metrics.Conflict("allocate")
			}
			return allocation{}, err
		}

		need, reasons := p.NeedsReplenish(uc.thresholds)
		return allocation{code: code, remaining: p.Remaining(), replenish: need, reasons: reasons}, nil
	})
	if err != nil {
		uc.recordFailure(d, err)
		return nil, err
	}

	uc.metrics.Allocation(d.Int(), metrics.ResultSuccess)
	uc.metrics.PoolRemaining(d.Int(), got.remaining)
	uc.logger.Info("code allocated",
		"denomination", d.Int(),
		"remaining", got.remaining)

	// Replenishment is detached: its outcome never changes this result.
	if got.replenish && uc.trigger != nil {
		uc.trigger.Trigger(d, got.reasons)
	}

	return &AllocateResult{
		Code:               got.code,
		Denomination:       d,
		Remaining:          got.remaining,
		ReplenishTriggered: got.replenish,
	}, nil
}

func (uc *codeUseCaseImpl) recordFailure(d pool.Denomination, err error) {
	switch {
	case errs.Is(err, errs.ErrNoStock):
		uc.metrics.Allocation(d.Int(), metrics.ResultNoStock)
		uc.logger.Warn("no codes in stock", "denomination", d.Int())
	case errs.Is(err, errs.ErrBusy):
		uc.metrics.Allocation(d.Int(), metrics.ResultBusy)
		uc.logger.Warn("allocation contention", "denomination", d.Int(), "error", err)
	default:
		uc.metrics.Allocation(d.Int(), metrics.ResultError)
		uc.logger.Error("allocation failed", "denomination", d.Int(), "error", err)
	}
}
