package response

import (
	"promo-bonus-service/internal/usecase/commands"
	"promo-bonus-service/internal/usecase/queries"

	"github.com/ecodeclub/ekit/slice"
)

type LedgerResponse struct {
	Success  bool   `json:"success"`
	Applied  bool   `json:"applied"`
	Outcome  string `json:"outcome"`
	OrderID  string `json:"order_id"`
	Phone    string `json:"phone"`
	Status   string `json:"status,omitempty"`
	Active   int    `json:"active"`
	Reserved int    `json:"reserved"`
}

func FromLedgerResult(r *commands.LedgerResult) *LedgerResponse {
	return &LedgerResponse{
		Success:  true,
		Applied:  r.Outcome.Changed(),
		Outcome:  string(r.Outcome),
		OrderID:  r.OrderID.String(),
		Phone:    r.Phone.String(),
		Status:   string(r.Status),
		Active:   r.Active,
		Reserved: r.Reserved,
	}
}

type HistoryEntryResponse struct {
	Operation    string `json:"operation"`
	OrderID      string `json:"order_id"`
	Amount       int    `json:"amount"`
	ActiveBefore int    `json:"active_before"`
	ActiveAfter  int    `json:"active_after"`
	At           int64  `json:"at"`
}

type BalanceResponse struct {
	Success  bool                   `json:"success"`
	Phone    string                 `json:"phone"`
	Active   int                    `json:"active"`
	Reserved int                    `json:"reserved"`
	History  []HistoryEntryResponse `json:"history"`
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	return &BalanceResponse{
		Success:  true,
		Phone:    v.Phone,
		Active:   v.Active,
		Reserved: v.Reserved,
		History: slice.Map(v.History, func(_ int, h queries.HistoryView) HistoryEntryResponse {
			return HistoryEntryResponse{
				Operation:    h.Operation,
				OrderID:      h.OrderID,
				Amount:       h.Amount,
				ActiveBefore: h.ActiveBefore,
				ActiveAfter:  h.ActiveAfter,
				At:           h.At.Unix(),
			}
		}),
	}
}

type WebhookResponse struct {
	Success bool            `json:"success"`
	Action  string          `json:"action"`
	Message string          `json:"message,omitempty"`
	Ledger  *LedgerResponse `json:"ledger,omitempty"`
}

func FromWebhookResult(r *commands.WebhookResult) *WebhookResponse {
	res := &WebhookResponse{Success: true, Action: r.Action, Message: r.Reason}
	if r.Ledger != nil {
		res.Ledger = FromLedgerResult(r.Ledger)
	}
	return res
}

type LeadReserveResponse struct {
	Success   bool            `json:"success"`
	Requested int             `json:"requested"`
	Allowed   int             `json:"allowed"`
	Reserved  int             `json:"reserved_amount"`
	Ledger    *LedgerResponse `json:"ledger"`
}

func FromLeadReserveResult(r *commands.LeadReserveResult) *LeadReserveResponse {
	return &LeadReserveResponse{
		Success:   true,
		Requested: r.Requested,
		Allowed:   r.Allowed,
		Reserved:  r.Ledger.ManualReserved,
		Ledger:    FromLedgerResult(r.Ledger),
	}
}
