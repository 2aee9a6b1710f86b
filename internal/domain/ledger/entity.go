package ledger

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"time"
)

var (
	ErrInsufficientBalance = errors.New("reserve amount exceeds active balance")
	ErrInvalidTransition   = errors.New("order is already in a terminal state")
)

// Account is one customer's bonus balance together with the per-order records
// that make every event idempotent. active and reserved never go negative.
type Account struct {
	phone        Phone
	active       int
	reserved     int
	orders       map[OrderID]OrderRecord
	accruals     map[OrderID]OrderRecord
	history      []Entry
	historyLimit int
}

func NewAccount(phone Phone, historyLimit int) *Account {
	return &Account{
		phone:        phone,
		orders:       make(map[OrderID]OrderRecord),
		accruals:     make(map[OrderID]OrderRecord),
		historyLimit: historyLimit,
	}
}

func Reconstruct(s Snapshot, historyLimit int) *Account {
	a := NewAccount(s.Phone, historyLimit)
	a.active = max(s.Active, 0)
	a.reserved = max(s.Reserved, 0)
	for _, r := range s.Orders {
		a.orders[r.OrderID] = r
	}
	for _, r := range s.Accruals {
		a.accruals[r.OrderID] = r
	}
	a.history = slices.Clone(s.History)
	a.trimHistory()
	return a
}

// Reserve moves amount from active to reserved for a new order. Any existing
// record for the order means the event was already seen, unless the record
// holds only a manual top-up that arrived first.
func (a *Account) Reserve(orderID OrderID, amount int, at time.Time) (Outcome, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	rec, ok := a.orders[orderID]
	if ok && !rec.onlyManual() {
		return OutcomeDuplicate, nil
	}
	if amount > a.active {
		return "", ErrInsufficientBalance
	}
	if !ok {
		rec = OrderRecord{OrderID: orderID, Status: StatusReserved}
	}

	before := a.active
	a.active -= amount
	a.reserved += amount
	rec.ReservedAmount += amount
	rec.UpdatedAt = at
	a.orders[orderID] = rec
	a.record(OpReserve, orderID, amount, before, at)
	return OutcomeApplied, nil
}

// ManualReserve adds at most amount to the reservation of an open order, once
// per order. Only what active covers is moved; with nothing to move the call
// is a no-op and may be repeated later.
func (a *Account) ManualReserve(orderID OrderID, amount int, at time.Time) (Outcome, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	rec, ok := a.orders[orderID]
	if ok {
		if rec.ManualAmount > 0 {
			return OutcomeDuplicate, nil
		}
		if rec.Status.IsTerminal() {
			return "", ErrInvalidTransition
		}
	} else {
		rec = OrderRecord{OrderID: orderID, Status: StatusReserved}
	}

	take := min(amount, a.active)
	if take <= 0 {
		return OutcomeNoop, nil
	}

	before := a.active
	a.active -= take
	a.reserved += take
	rec.ReservedAmount += take
	rec.ManualAmount = take
	rec.UpdatedAt = at
	a.orders[orderID] = rec
	a.record(OpManualReserve, orderID, take, before, at)
	return OutcomeApplied, nil
}

// Complete consumes the reservation, if any, and credits accrual to active.
func (a *Account) Complete(orderID OrderID, accrual int, at time.Time) (Outcome, error) {
	if accrual < 0 {
		return "", ErrInvalidAmount
	}
	rec, ok := a.orders[orderID]
	if ok {
		switch rec.Status {
		case StatusCompleted:
			return OutcomeDuplicate, nil
		case StatusCancelled:
			return "", ErrInvalidTransition
		}
	} else {
		rec = OrderRecord{OrderID: orderID}
	}

	before := a.active
	a.reserved = max(a.reserved-rec.ReservedAmount, 0)
	a.active += accrual
	rec.AccrualAmount = accrual
	rec.Status = StatusCompleted
	rec.UpdatedAt = at
	a.orders[orderID] = rec
	a.record(OpComplete, orderID, accrual, before, at)
	return OutcomeApplied, nil
}

// Cancel returns the reservation to active. Cancelling an unknown order does nothing.
func (a *Account) Cancel(orderID OrderID, at time.Time) (Outcome, error) {
	rec, ok := a.orders[orderID]
	if !ok {
		return OutcomeNoop, nil
	}
	switch rec.Status {
	case StatusCancelled:
		return OutcomeDuplicate, nil
	case StatusCompleted:
		return "", ErrInvalidTransition
	}

	before := a.active
	a.reserved = max(a.reserved-rec.ReservedAmount, 0)
	a.active += rec.ReservedAmount
	rec.Status = StatusCancelled
	rec.UpdatedAt = at
	a.orders[orderID] = rec
	a.record(OpCancel, orderID, rec.ReservedAmount, before, at)
	return OutcomeApplied, nil
}

// Accrue credits a manual bonus once per key. Keys live apart from order
// records so a manual credit never blocks a later reserve for the same order.
func (a *Account) Accrue(key OrderID, amount int, at time.Time) (Outcome, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	if _, ok := a.accruals[key]; ok {
		return OutcomeDuplicate, nil
	}

	before := a.active
	a.active += amount
	a.accruals[key] = OrderRecord{
		OrderID:       key,
		AccrualAmount: amount,
		Status:        StatusAccrued,
		UpdatedAt:     at,
	}
	a.record(OpAccrue, key, amount, before, at)
	return OutcomeApplied, nil
}

func (a *Account) record(op Operation, orderID OrderID, amount, activeBefore int, at time.Time) {
	a.history = append(a.history, Entry{
		Operation:    op,
		OrderID:      orderID,
		Amount:       amount,
		ActiveBefore: activeBefore,
		ActiveAfter:  a.active,
		Reserved:     a.reserved,
		At:           at,
	})
	a.trimHistory()
}

func (a *Account) trimHistory() {
	if a.historyLimit > 0 && len(a.history) > a.historyLimit {
		a.history = slices.Clone(a.history[len(a.history)-a.historyLimit:])
	}
}

func (a *Account) Order(orderID OrderID) (OrderRecord, bool) {
	r, ok := a.orders[orderID]
	return r, ok
}

func (a *Account) Snapshot() Snapshot {
	return Snapshot{
		Phone:    a.phone,
		Active:   a.active,
		Reserved: a.reserved,
		Orders:   sortedRecords(a.orders),
		Accruals: sortedRecords(a.accruals),
		History:  slices.Clone(a.history),
	}
}

func sortedRecords(m map[OrderID]OrderRecord) []OrderRecord {
	keys := slices.SortedFunc(maps.Keys(m), func(x, y OrderID) int {
		return strings.Compare(string(x), string(y))
	})
	out := make([]OrderRecord, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

func (a *Account) Phone() Phone     { return a.phone }
func (a *Account) Active() int      { return a.active }
func (a *Account) Reserved() int    { return a.reserved }
func (a *Account) History() []Entry { return slices.Clone(a.history) }
func (a *Account) OrderCount() int  { return len(a.orders) }
