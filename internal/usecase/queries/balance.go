package queries

//go:generate mockgen -source=balance.go -destination=../../../tests/mock/queries/balance.go -package=queriesmock

import (
	"context"

	"promo-bonus-service/internal/domain/ledger"
	"promo-bonus-service/internal/pkg/errs"

	"github.com/ecodeclub/ekit/slice"
)

type BalanceQueries interface {
	GetBalance(ctx context.Context, rawPhone string) (*BalanceView, error)
}

type LedgerReadStore interface {
	Load(ctx context.Context, phone ledger.Phone) (*ledger.Account, string, error)
}

type balanceQueriesImpl struct {
	readStore LedgerReadStore
}

func NewBalanceQueries(readStore LedgerReadStore) BalanceQueries {
	return &balanceQueriesImpl{readStore: readStore}
}

// GetBalance reports a zero balance for customers with no ledger yet.
func (q *balanceQueriesImpl) GetBalance(ctx context.Context, rawPhone string) (*BalanceView, error) {
	phone, err := ledger.NormalizePhone(rawPhone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPayload)
	}

	account, _, err := q.readStore.Load(ctx, phone)
	if err != nil {
		return nil, err
	}

	return &BalanceView{
		Phone:    phone.String(),
		Active:   account.Active(),
		Reserved: account.Reserved(),
		History: slice.Map(account.History(), func(_ int, e ledger.Entry) HistoryView {
			return HistoryView{
				Operation:    string(e.Operation),
				OrderID:      e.OrderID.String(),
				Amount:       e.Amount,
				ActiveBefore: e.ActiveBefore,
				ActiveAfter:  e.ActiveAfter,
				At:           e.At,
			}
		}),
	}, nil
}
