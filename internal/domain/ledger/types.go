package ledger

import "time"

type OrderRecord struct {
	OrderID        OrderID   `json:"order_id"`
	ReservedAmount int       `json:"reserved_amount"`
	ManualAmount   int       `json:"manual_amount,omitempty"`
	AccrualAmount  int       `json:"accrual_amount,omitempty"`
	Status         Status    `json:"status"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// onlyManual is true while the order's reservation came from a manual top-up alone.
func (r OrderRecord) onlyManual() bool {
	return r.Status == StatusReserved && r.ManualAmount > 0 && r.ReservedAmount == r.ManualAmount
}

type Entry struct {
	Operation    Operation `json:"operation"`
	OrderID      OrderID   `json:"order_id"`
	Amount       int       `json:"amount"`
	ActiveBefore int       `json:"active_before"`
	ActiveAfter  int       `json:"active_after"`
	Reserved     int       `json:"reserved"`
	At           time.Time `json:"at"`
}

// Snapshot is the persisted shape of an Account.
type Snapshot struct {
	Phone    Phone         `json:"phone"`
	Active   int           `json:"active"`
	Reserved int           `json:"reserved"`
	Orders   []OrderRecord `json:"orders"`
	Accruals []OrderRecord `json:"accruals"`
	History  []Entry       `json:"history"`
}
