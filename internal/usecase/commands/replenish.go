package commands

//go:generate mockgen -source=replenish.go -destination=../../../tests/mock/commands/replenish.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"promo-bonus-service/internal/domain/pool"
	"promo-bonus-service/internal/infra"
	"promo-bonus-service/internal/infra/metrics"
	"promo-bonus-service/internal/pkg/config"
	"promo-bonus-service/internal/pkg/errs"
	"promo-bonus-service/internal/usecase/shared"

	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/sync/errgroup"
)

const replenishAllConcurrency = 4

type ReplenishResult struct {
	Denomination pool.Denomination
	Requested    int
	Produced     int
	Added        int
	Remaining    int
	Err          error
}

type ReplenishCommands interface {
	// Replenish asks the producer for count codes, or for enough to reach the
	// configured target when count is not positive, and merges them into the pool.
	Replenish(ctx context.Context, d pool.Denomination, count int) (*ReplenishResult, error)
	// ReplenishAll runs Replenish for every configured denomination.
	ReplenishAll(ctx context.Context) ([]ReplenishResult, error)
}

type replenishUseCaseImpl struct {
	pools           PoolRepository
	producer        CodeProducer
	denominations   []pool.Denomination
	target          int
	producerTimeout time.Duration
	retry           shared.RetryPolicy
	metrics         *metrics.Metrics
	logger          *slog.Logger
}

func NewReplenishCommands(
	pools PoolRepository,
	producer CodeProducer,
	poolCfg config.PoolConfig,
	producerCfg config.ProducerConfig,
	retry shared.RetryPolicy,
	m *metrics.Metrics,
	logger *slog.Logger,
) ReplenishCommands {
	denominations := make([]pool.Denomination, 0, len(poolCfg.Denominations))
	for _, v := range poolCfg.Denominations {
		d, err := pool.NewDenomination(v)
		if err != nil {
			logger.Warn("skipping invalid configured denomination", "denomination", v, "error", err)
			continue
		}
		denominations = append(denominations, d)
	}
	return &replenishUseCaseImpl{
		pools:           pools,
		producer:        producer,
		denominations:   denominations,
		target:          poolCfg.TargetCodes,
		producerTimeout: producerCfg.Timeout,
		retry:           retry,
		metrics:         m,
		logger:          logger,
	}
}

func (uc *replenishUseCaseImpl) Replenish(ctx context.Context, d pool.Denomination, count int) (*ReplenishResult, error) {
	if count <= 0 {
		p, _, err := uc.pools.Load(ctx, d)
		if err != nil {
			return nil, err
		}
		count = p.Shortfall(uc.target)
	}

	batch, produceErr := uc.produce(ctx, d, count)
	if produceErr != nil && len(batch.Codes) == 0 {
		uc.metrics.Replenish(d.Int(), metrics.ResultError, 0)
		uc.logger.Error("code producer failed",
			"denomination", d.Int(),
			"requested", count,
			"error", produceErr)
		return nil, errs.Mark(errs.Wrap(produceErr, "replenish "+d.String()), errs.ErrProducerUnavailable)
	}
	if produceErr != nil {
		uc.logger.Warn("code producer returned a partial batch",
			"denomination", d.Int(),
			"requested", count,
			"produced", len(batch.Codes),
			"error", produceErr)
	}

	codes := uc.acceptable(d, batch.Codes)
	result := &ReplenishResult{
		Denomination: d,
		Requested:    count,
		Produced:     len(batch.Codes),
	}

	merged, err := shared.RunWithRetry(ctx, uc.retry, "replenish", func(ctx context.Context) (ReplenishResult, error) {
		fresh, err := uc.withoutStockedElsewhere(ctx, d, codes)
		if err != nil {
			return ReplenishResult{}, err
		}

		p, version, err := uc.pools.Load(ctx, d)
		if err != nil {
			return ReplenishResult{}, err
		}

		added := p.Merge(fresh)
		if added == 0 {
			return ReplenishResult{Remaining: p.Remaining()}, nil
		}
		if _, err := uc.pools.Save(ctx, p, version); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				uc.metrics.Conflict("replenish")
			}
			return ReplenishResult{}, err
		}
		return ReplenishResult{Added: added, Remaining: p.Remaining()}, nil
	})
	if err != nil {
		uc.metrics.Replenish(d.Int(), metrics.ResultError, 0)
		uc.logger.Error("failed to merge produced codes",
			"denomination", d.Int(),
			"produced", len(codes),
			"error", err)
		return nil, err
	}

	result.Added = merged.Added
	result.Remaining = merged.Remaining
	uc.metrics.Replenish(d.Int(), metrics.ResultSuccess, result.Added)
	uc.metrics.PoolRemaining(d.Int(), result.Remaining)
	uc.logger.Info("pool replenished",
		"denomination", d.Int(),
		"requested", result.Requested,
		"produced", result.Produced,
		"added", result.Added,
		"remaining", result.Remaining)
	return result, nil
}

func (uc *replenishUseCaseImpl) ReplenishAll(ctx context.Context) ([]ReplenishResult, error) {
	results := make([]ReplenishResult, len(uc.denominations))

	var g errgroup.Group
	g.SetLimit(replenishAllConcurrency)
	for i, d := range uc.denominations {
		g.Go(func() error {
			res, err := uc.Replenish(ctx, d, 0)
			if err != nil {
				results[i] = ReplenishResult{Denomination: d, Err: err}
				return nil
			}
			results[i] = *res
			return nil
		})
	}
	_ = g.Wait()

	failed := slice.FindAll(results, func(r ReplenishResult) bool { return r.Err != nil })
	return results, errors.Join(slice.Map(failed, func(_ int, r ReplenishResult) error { return r.Err })...)
}

func (uc *replenishUseCaseImpl) produce(ctx context.Context, d pool.Denomination, count int) (ProducerBatch, error) {
	if uc.producerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.producerTimeout)
		defer cancel()
	}
	return uc.producer.Produce(ctx, d, count)
}

// acceptable keeps well-formed codes that carry the BON prefix of d.
func (uc *replenishUseCaseImpl) acceptable(d pool.Denomination, raw []string) []pool.Code {
	out := make([]pool.Code, 0, len(raw))
	for _, s := range raw {
		code, err := pool.NewCode(s)
		if err != nil {
			uc.logger.Warn("dropping malformed code", "denomination", d.Int(), "code", s)
			continue
		}
		if !code.IssuedFor(d) {
			uc.logger.Warn("dropping code not issued for this denomination",
				"denomination", d.Int(),
				"code", code)
			continue
		}
		out = append(out, code)
	}
	return out
}

// withoutStockedElsewhere drops codes that already sit in another configured
// pool. Only pools whose prefix the code also matches are read, so the usual
// case costs no extra reads. The check is not atomic with the merge: a sibling
// pool filled concurrently with the same code is not detected.
func (uc *replenishUseCaseImpl) withoutStockedElsewhere(ctx context.Context, d pool.Denomination, codes []pool.Code) ([]pool.Code, error) {
	out := codes
	for _, other := range uc.denominations {
		if other == d {
			continue
		}
		if !slices.ContainsFunc(out, func(c pool.Code) bool { return c.IssuedFor(other) }) {
			continue
		}
		sibling, _, err := uc.pools.Load(ctx, other)
		if err != nil {
			return nil, err
		}
		kept := slice.FilterDelete(slices.Clone(out), func(_ int, c pool.Code) bool {
			return sibling.Contains(c)
		})
		if dropped := len(out) - len(kept); dropped > 0 {
			uc.logger.Warn("dropping codes already stocked in another pool",
				"denomination", d.Int(),
				"other_denomination", other.Int(),
				"dropped", dropped)
		}
		out = kept
	}
	return out, nil
}
