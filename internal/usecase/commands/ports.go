package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"

	"promo-bonus-service/internal/domain/ledger"
	"promo-bonus-service/internal/domain/pool"
)

// Repositories hand back the version token they read; Save must be given that
// token and fails with a CONFLICT repository error when the object moved on.
// An empty token means the object does not exist yet.

type PoolRepository interface {
	Load(ctx context.Context, d pool.Denomination) (*pool.CodePool, string, error)
	Save(ctx context.Context, p *pool.CodePool, version string) (string, error)
}

type LedgerRepository interface {
	Load(ctx context.Context, phone ledger.Phone) (*ledger.Account, string, error)
	Save(ctx context.Context, a *ledger.Account, version string) (string, error)
}

// ProducerBatch is the result of one producer run. Codes may be fewer than Requested.
type ProducerBatch struct {
	Requested int
	Codes     []string
}

type CodeProducer interface {
	Produce(ctx context.Context, d pool.Denomination, count int) (ProducerBatch, error)
}

// ReplenishTrigger starts a replenish run without waiting for it.
type ReplenishTrigger interface {
	Trigger(d pool.Denomination, reasons []pool.ReplenishReason)
}
