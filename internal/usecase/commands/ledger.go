package commands

//go:generate mockgen -source=ledger.go -destination=../../../tests/mock/commands/ledger.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"promo-bonus-service/internal/domain/ledger"
	"promo-bonus-service/internal/infra"
	"promo-bonus-service/internal/infra/metrics"
	"promo-bonus-service/internal/pkg/clock"
	"promo-bonus-service/internal/pkg/errs"
	"promo-bonus-service/internal/usecase/shared"
)

type ReserveInput struct {
	OrderID string
	Phone   string
	Amount  int
}

// ManualReserveInput tops up an order's reservation; Amount is already capped.
type ManualReserveInput struct {
	OrderID string
	Phone   string
	Amount  int
}

type CompleteInput struct {
	OrderID string
	Phone   string
	Accrual int
}

type CancelInput struct {
	OrderID string
	Phone   string
}

type AccrueInput struct {
	OrderID string
	Phone   string
	Amount  int
}

type LedgerResult struct {
	Phone    ledger.Phone
	OrderID  ledger.OrderID
	Outcome  ledger.Outcome
	Status   ledger.Status
	Active   int
	Reserved int

	// ManualReserved is the manual top-up held for the order, if any.
	ManualReserved int
}

type LedgerCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*LedgerResult, error)
	ManualReserve(ctx context.Context, in ManualReserveInput) (*LedgerResult, error)
	Complete(ctx context.Context, in CompleteInput) (*LedgerResult, error)
	Cancel(ctx context.Context, in CancelInput) (*LedgerResult, error)
	Accrue(ctx context.Context, in AccrueInput) (*LedgerResult, error)
}

type ledgerUseCaseImpl struct {
	ledgers LedgerRepository
	retry   shared.RetryPolicy
	clock   clock.Clock
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewLedgerCommands(
	ledgers LedgerRepository,
	retry shared.RetryPolicy,
	clk clock.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) LedgerCommands {
	return &ledgerUseCaseImpl{
		ledgers: ledgers,
		retry:   retry,
		clock:   clk,
		metrics: m,
		logger:  logger,
	}
}

type mutation func(a *ledger.Account, orderID ledger.OrderID, at time.Time) (ledger.Outcome, error)

func (uc *ledgerUseCaseImpl) Reserve(ctx context.Context, in ReserveInput) (*LedgerResult, error) {
	return uc.apply(ctx, ledger.OpReserve, in.Phone, in.OrderID, func(a *ledger.Account, id ledger.OrderID, at time.Time) (ledger.Outcome, error) {
		return a.Reserve(id, in.Amount, at)
	})
}

func (uc *ledgerUseCaseImpl) ManualReserve(ctx context.Context, in ManualReserveInput) (*LedgerResult, error) {
	return uc.apply(ctx, ledger.OpManualReserve, in.Phone, in.OrderID, func(a *ledger.Account, id ledger.OrderID, at time.Time) (ledger.Outcome, error) {
		return a.ManualReserve(id, in.Amount, at)
	})
}

func (uc *ledgerUseCaseImpl) Complete(ctx context.Context, in CompleteInput) (*LedgerResult, error) {
	return uc.apply(ctx, ledger.OpComplete, in.Phone, in.OrderID, func(a *ledger.Account, id ledger.OrderID, at time.Time) (ledger.Outcome, error) {
		return a.Complete(id, in.Accrual, at)
	})
}

func (uc *ledgerUseCaseImpl) Cancel(ctx context.Context, in CancelInput) (*LedgerResult, error) {
	return uc.apply(ctx, ledger.OpCancel, in.Phone, in.OrderID, func(a *ledger.Account, id ledger.OrderID, at time.Time) (ledger.Outcome, error) {
		return a.Cancel(id, at)
	})
}

func (uc *ledgerUseCaseImpl) Accrue(ctx context.Context, in AccrueInput) (*LedgerResult, error) {
	return uc.apply(ctx, ledger.OpAccrue, in.Phone, in.OrderID, func(a *ledger.Account, id ledger.OrderID, at time.Time) (ledger.Outcome, error) {
		return a.Accrue(id, in.Amount, at)
	})
}

// apply runs one ledger event as read, mutate, conditional write. Duplicates
// and no-ops skip the write; rejected events never reach the store.
func (uc *ledgerUseCaseImpl) apply(ctx context.Context, op ledger.Operation, rawPhone, rawOrderID string, mutate mutation) (*LedgerResult, error) {
	phone, err := ledger.NormalizePhone(rawPhone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPayload)
	}
	orderID, err := ledger.NewOrderID(rawOrderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPayload)
	}

	var current ledger.Status
	result, err := shared.RunWithRetry(ctx, uc.retry, string(op), func(ctx context.Context) (*LedgerResult, error) {
		account, version, err := uc.ledgers.Load(ctx, phone)
		if err != nil {
			return nil, err
		}
		if rec, ok := account.Order(orderID); ok {
			current = rec.Status
		}

		outcome, err := mutate(account, orderID, uc.clock.Now())
		if err != nil {
			return nil, markLedgerErr(err)
		}

		if outcome.Changed() {
			if _, err := uc.ledgers.Save(ctx, account, version); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					uc.metrics.Conflict(string(op))
				}
				return nil, err
			}
		}

		res := &LedgerResult{
			Phone:    phone,
			OrderID:  orderID,
			Outcome:  outcome,
			Active:   account.Active(),
			Reserved: account.Reserved(),
		}
		if rec, ok := account.Order(orderID); ok {
			res.Status = rec.Status
			res.ManualReserved = rec.ManualAmount
		}
		if op == ledger.OpAccrue {
			res.Status = ledger.StatusAccrued
		}
		return res, nil
	})
	if err != nil {
		uc.logFailure(op, phone, orderID, current, err)
		return nil, err
	}

	uc.metrics.LedgerEvent(string(op), string(result.Outcome))
	uc.logger.Info("ledger event processed",
		"op", op,
		"order_id", orderID,
		"phone", phone,
		"outcome", result.Outcome,
		"active", result.Active,
		"reserved", result.Reserved)
	return result, nil
}

func markLedgerErr(err error) error {
	switch {
	case errors.Is(err, ledger.ErrInsufficientBalance):
		return errs.Mark(err, errs.ErrInsufficientBalance)
	case errors.Is(err, ledger.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errors.Is(err, ledger.ErrInvalidAmount):
		return errs.Mark(err, errs.ErrInvalidPayload)
	}
	return err
}

func (uc *ledgerUseCaseImpl) logFailure(op ledger.Operation, phone ledger.Phone, orderID ledger.OrderID, status ledger.Status, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidTransition):
		uc.metrics.LedgerEvent(string(op), "invalid_transition")
		uc.logger.Warn("rejected ledger transition",
			"op", op,
			"order_id", orderID,
			"phone", phone,
			"status", status)
	case errs.Is(err, errs.ErrInsufficientBalance):
		uc.metrics.LedgerEvent(string(op), "insufficient_balance")
		uc.logger.Info("reserve rejected, insufficient balance",
			"order_id", orderID,
			"phone", phone)
	case errs.Is(err, errs.ErrInvalidPayload):
		uc.metrics.LedgerEvent(string(op), "invalid_payload")
	default:
		uc.metrics.LedgerEvent(string(op), "error")
		uc.logger.Error("ledger event failed",
			"op", op,
			"order_id", orderID,
			"phone", phone,
			"error", err)
	}
}
