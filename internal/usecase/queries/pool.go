package queries

//go:generate mockgen -source=pool.go -destination=../../../tests/mock/queries/pool.go -package=queriesmock

import (
	"context"

	"promo-bonus-service/internal/domain/pool"
	"promo-bonus-service/internal/pkg/config"
)

type PoolQueries interface {
	GetPool(ctx context.Context, d pool.Denomination) (*PoolView, error)
}

type PoolReadStore interface {
	Load(ctx context.Context, d pool.Denomination) (*pool.CodePool, string, error)
}

type poolQueriesImpl struct {
	readStore  PoolReadStore
	thresholds pool.Thresholds
}

func NewPoolQueries(readStore PoolReadStore, poolCfg config.PoolConfig) PoolQueries {
	return &poolQueriesImpl{
		readStore: readStore,
		thresholds: pool.Thresholds{
			MinCodes: poolCfg.MinCodesThreshold,
			Batch:    poolCfg.BatchThreshold,
		},
	}
}

func (q *poolQueriesImpl) GetPool(ctx context.Context, d pool.Denomination) (*PoolView, error) {
	p, _, err := q.readStore.Load(ctx, d)
	if err != nil {
		return nil, err
	}
	need, _ := p.NeedsReplenish(q.thresholds)
	return &PoolView{
		Denomination:           d.Int(),
		Remaining:              p.Remaining(),
		ConsumedSinceReplenish: p.ConsumedSinceReplenish(),
		NeedsReplenish:         need,
	}, nil
}
