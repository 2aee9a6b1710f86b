package ledger

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPhone   = errors.New("phone must contain digits")
	ErrInvalidOrderID = errors.New("order id is required")
	ErrInvalidAmount  = errors.New("amount must be positive")
)

type Phone string

// NormalizePhone strips formatting and brings local Ukrainian numbers to the
// 380XXXXXXXXX form so the same customer always maps to one account.
func NormalizePhone(raw string) (Phone, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case digits == "":
		return "", ErrInvalidPhone
	case strings.HasPrefix(digits, "380") && len(digits) == 12:
	case strings.HasPrefix(digits, "80") && len(digits) == 11:
		digits = "3" + digits
	case strings.HasPrefix(digits, "0") && len(digits) == 10:
		digits = "38" + digits
	case len(digits) == 9:
		digits = "380" + digits
	}
	return Phone(digits), nil
}

func (p Phone) String() string { return string(p) }

type OrderID string

func NewOrderID(raw string) (OrderID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidOrderID
	}
	return OrderID(raw), nil
}

func (o OrderID) String() string { return string(o) }

type Status string

const (
	StatusReserved  Status = "RESERVED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusAccrued   Status = "ACCRUED"
)

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusAccrued
}

type Operation string

const (
	OpReserve       Operation = "reserve"
	OpManualReserve Operation = "manual_reserve"
	OpComplete      Operation = "complete"
	OpCancel        Operation = "cancel"
	OpAccrue        Operation = "accrue"
)

// Outcome tells callers whether an event changed the account.
type Outcome string

const (
	OutcomeApplied   Outcome = "applied"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeNoop      Outcome = "noop"
)

func (o Outcome) Changed() bool { return o == OutcomeApplied }
