package commands

//go:generate mockgen -source=webhook.go -destination=../../../tests/mock/commands/webhook.go -package=commandsmock

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"promo-bonus-service/internal/pkg/config"
	"promo-bonus-service/internal/pkg/errs"
)

const (
	EventOrderCreate       = "order.create"
	EventOrderStatusChange = "order.change_order_status"

	StatusGroupCompleted = "completed"
	StatusGroupCanceled  = "canceled"
)

const (
	WebhookActionReserve  = "reserve"
	WebhookActionComplete = "complete"
	WebhookActionCancel   = "cancel"
	WebhookActionIgnored  = "ignored"
)

// WebhookEvent is the subset of a CRM order event the ledger acts on.
type WebhookEvent struct {
	Event          string
	OrderID        string
	Phone          string
	Promocode      string
	DiscountAmount float64
	ProductsTotal  float64
	GrandTotal     float64
	StatusGroup    string
}

type WebhookResult struct {
	Action string
	Reason string
	Ledger *LedgerResult
}

// LeadReserveInput is a manual bonus top-up requested from a CRM lead for an
// existing order. OrderTotal and CurrentDiscount come from that order.
type LeadReserveInput struct {
	OrderID         string
	Phone           string
	Amount          float64
	OrderTotal      float64
	CurrentDiscount float64
}

type LeadReserveResult struct {
	Requested int
	Allowed   int
	Ledger    *LedgerResult
}

type WebhookCommands interface {
	Handle(ctx context.Context, ev WebhookEvent) (*WebhookResult, error)
	// LeadReserve caps the top-up so the order's total discount stays within
	// the max usage share of OrderTotal.
	LeadReserve(ctx context.Context, in LeadReserveInput) (*LeadReserveResult, error)
}

type webhookUseCaseImpl struct {
	ledger LedgerCommands
	bonus  config.BonusConfig
	logger *slog.Logger
}

func NewWebhookCommands(ledger LedgerCommands, bonus config.BonusConfig, logger *slog.Logger) WebhookCommands {
	return &webhookUseCaseImpl{ledger: ledger, bonus: bonus, logger: logger}
}

func (uc *webhookUseCaseImpl) Handle(ctx context.Context, ev WebhookEvent) (*WebhookResult, error) {
	switch ev.Event {
	case EventOrderCreate:
		return uc.onCreate(ctx, ev)
	case EventOrderStatusChange:
		return uc.onStatusChange(ctx, ev)
	}
	uc.logger.Info("ignoring webhook event", "event", ev.Event)
	return ignored("unsupported event " + ev.Event), nil
}

func (uc *webhookUseCaseImpl) onCreate(ctx context.Context, ev WebhookEvent) (*WebhookResult, error) {
	if strings.TrimSpace(ev.Promocode) == "" || ev.DiscountAmount <= 0 {
		return ignored("order carries no bonus discount"), nil
	}
	if err := requireOrder(ev); err != nil {
		return nil, err
	}

	amount := ev.DiscountAmount
	if ev.ProductsTotal > 0 {
		amount = math.Min(amount, ev.ProductsTotal*float64(uc.bonus.MaxUsagePercent)/100)
	}
	reserve := int(math.Floor(amount))
	if reserve <= 0 {
		return ignored("discount rounds to zero"), nil
	}

	res, err := uc.ledger.Reserve(ctx, ReserveInput{OrderID: ev.OrderID, Phone: ev.Phone, Amount: reserve})
	if err != nil {
		return nil, err
	}
	return &WebhookResult{Action: WebhookActionReserve, Ledger: res}, nil
}

func (uc *webhookUseCaseImpl) onStatusChange(ctx context.Context, ev WebhookEvent) (*WebhookResult, error) {
	switch strings.ToLower(strings.TrimSpace(ev.StatusGroup)) {
	case StatusGroupCompleted:
		if err := requireOrder(ev); err != nil {
			return nil, err
		}
		if ev.GrandTotal < 0 {
			return nil, errs.Mark(errs.New("grand_total must not be negative"), errs.ErrInvalidPayload)
		}
		accrual := int(math.Floor(ev.GrandTotal * float64(uc.bonus.AccrualPercent) / 100))
		res, err := uc.ledger.Complete(ctx, CompleteInput{OrderID: ev.OrderID, Phone: ev.Phone, Accrual: accrual})
		if err != nil {
			return nil, err
		}
		return &WebhookResult{Action: WebhookActionComplete, Ledger: res}, nil

	case StatusGroupCanceled, "cancelled":
		if err := requireOrder(ev); err != nil {
			return nil, err
		}
		res, err := uc.ledger.Cancel(ctx, CancelInput{OrderID: ev.OrderID, Phone: ev.Phone})
		if err != nil {
			return nil, err
		}
		return &WebhookResult{Action: WebhookActionCancel, Ledger: res}, nil
	}
	return ignored("status group " + ev.StatusGroup + " does not affect bonuses"), nil
}

func (uc *webhookUseCaseImpl) LeadReserve(ctx context.Context, in LeadReserveInput) (*LeadReserveResult, error) {
	if err := requireOrder(WebhookEvent{OrderID: in.OrderID, Phone: in.Phone}); err != nil {
		return nil, err
	}
	requested := int(math.Floor(in.Amount))
	switch {
	case requested <= 0:
		return nil, errs.Mark(errs.New("reserve amount must be at least 1"), errs.ErrInvalidPayload)
	case in.OrderTotal <= 0:
		return nil, errs.Mark(errs.New("order_total must be positive"), errs.ErrInvalidPayload)
	case in.CurrentDiscount < 0:
		return nil, errs.Mark(errs.New("current_discount must not be negative"), errs.ErrInvalidPayload)
	}

	limit := int(math.Floor(in.OrderTotal*float64(uc.bonus.MaxUsagePercent)/100 - in.CurrentDiscount))
	if limit <= 0 {
		uc.logger.Info("lead reserve rejected, discount limit reached",
			"order_id", in.OrderID,
			"order_total", in.OrderTotal,
			"current_discount", in.CurrentDiscount)
		return nil, errs.Mark(errs.New("order "+in.OrderID+" has no discount headroom"), errs.ErrDiscountLimit)
	}
	allowed := min(requested, limit)
	if allowed < requested {
		uc.logger.Info("lead reserve capped",
			"order_id", in.OrderID,
			"requested", requested,
			"allowed", allowed)
	}

	res, err := uc.ledger.ManualReserve(ctx, ManualReserveInput{OrderID: in.OrderID, Phone: in.Phone, Amount: allowed})
	if err != nil {
		return nil, err
	}
	return &LeadReserveResult{Requested: requested, Allowed: allowed, Ledger: res}, nil
}

func requireOrder(ev WebhookEvent) error {
	if strings.TrimSpace(ev.OrderID) == "" {
		return errs.Mark(errs.New("order id is missing"), errs.ErrInvalidPayload)
	}
	if strings.TrimSpace(ev.Phone) == "" {
		return errs.Mark(errs.New("buyer phone is missing"), errs.ErrInvalidPayload)
	}
	return nil
}

func ignored(reason string) *WebhookResult {
	return &WebhookResult{Action: WebhookActionIgnored, Reason: reason}
}
