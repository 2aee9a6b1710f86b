package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"promo-bonus-service/internal/domain/ledger"
	"promo-bonus-service/internal/infra"
	"promo-bonus-service/internal/infra/objstore"
)

type LedgerRepository struct {
	store        objstore.Store
	historyLimit int
	logger       *slog.Logger
}

func NewLedgerRepository(store objstore.Store, historyLimit int, logger *slog.Logger) *LedgerRepository {
	return &LedgerRepository{store: store, historyLimit: historyLimit, logger: logger}
}

func LedgerKey(phone ledger.Phone) string {
	return "ledger:" + phone.String()
}

// Load returns a zero-balance account and an empty version for unknown customers.
func (r *LedgerRepository) Load(ctx context.Context, phone ledger.Phone) (*ledger.Account, string, error) {
	obj, err := r.store.Read(ctx, LedgerKey(phone))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ledger.NewAccount(phone, r.historyLimit), "", nil
		}
		return nil, "", err
	}

	var snap ledger.Snapshot
	if err := json.Unmarshal(obj.Value, &snap); err != nil {
		return nil, "", infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to decode ledger "+phone.String(), err)
	}
	snap.Phone = phone
	return ledger.Reconstruct(snap, r.historyLimit), obj.Version, nil
}

func (r *LedgerRepository) Save(ctx context.Context, a *ledger.Account, version string) (string, error) {
	payload, err := json.Marshal(a.Snapshot())
	if err != nil {
		return "", infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to encode ledger "+a.Phone().String(), err)
	}
	return save(ctx, r.store, LedgerKey(a.Phone()), payload, version)
}
