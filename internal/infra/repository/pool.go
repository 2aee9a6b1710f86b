package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"promo-bonus-service/internal/domain/pool"
	"promo-bonus-service/internal/infra"
	"promo-bonus-service/internal/infra/objstore"

	"github.com/ecodeclub/ekit/slice"
)

type poolDocument struct {
	Denomination           int      `json:"denomination"`
	Codes                  []string `json:"codes"`
	ConsumedSinceReplenish int      `json:"consumed_since_replenish"`
}

type PoolRepository struct {
	store  objstore.Store
	logger *slog.Logger
}

func NewPoolRepository(store objstore.Store, logger *slog.Logger) *PoolRepository {
	return &PoolRepository{store: store, logger: logger}
}

func PoolKey(d pool.Denomination) string {
	return "pool:" + d.String()
}

// Load returns an empty pool and an empty version when nothing was stored yet.
func (r *PoolRepository) Load(ctx context.Context, d pool.Denomination) (*pool.CodePool, string, error) {
	obj, err := r.store.Read(ctx, PoolKey(d))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return pool.NewCodePool(d), "", nil
		}
		return nil, "", err
	}

	var doc poolDocument
	if err := json.Unmarshal(obj.Value, &doc); err != nil {
		return nil, "", infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to decode pool "+d.String(), err)
	}
	codes := slice.Map(doc.Codes, func(_ int, s string) pool.Code { return pool.Code(s) })
	return pool.Reconstruct(d, codes, doc.ConsumedSinceReplenish), obj.Version, nil
}

// Save writes the pool conditionally. A stale version, or a concurrent first
// write, surfaces as a CONFLICT repository error.
func (r *PoolRepository) Save(ctx context.Context, p *pool.CodePool, version string) (string, error) {
	doc := poolDocument{
		Denomination:           p.Denomination().Int(),
		Codes:                  slice.Map(p.Codes(), func(_ int, c pool.Code) string { return c.String() }),
		ConsumedSinceReplenish: p.ConsumedSinceReplenish(),
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to encode pool "+p.Denomination().String(), err)
	}
	return save(ctx, r.store, PoolKey(p.Denomination()), payload, version)
}

func save(ctx context.Context, store objstore.Store, key string, payload []byte, version string) (string, error) {
	if version == "" {
		next, err := store.WriteIfAbsent(ctx, key, payload)
		if infra.IsKind(err, infra.KindAlreadyExists) {
			return "", infra.NewRepoErr(infra.KindConflict, "object "+key+" was created concurrently", nil)
		}
		return next, err
	}
	return store.WriteIfMatch(ctx, key, payload, version)
}
