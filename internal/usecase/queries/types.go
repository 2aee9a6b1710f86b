package queries

import "time"

// BalanceView is a customer's bonus balance with recent transactions
type BalanceView struct {
	Phone    string        `json:"phone"`
	Active   int           `json:"active"`
	Reserved int           `json:"reserved"`
	History  []HistoryView `json:"history"`
}

type HistoryView struct {
	Operation    string    `json:"operation"`
	OrderID      string    `json:"order_id"`
	Amount       int       `json:"amount"`
	ActiveBefore int       `json:"active_before"`
	ActiveAfter  int       `json:"active_after"`
	At           time.Time `json:"at"`
}

// PoolView is the stock of one denomination
type PoolView struct {
	Denomination           int  `json:"denomination"`
	Remaining              int  `json:"remaining"`
	ConsumedSinceReplenish int  `json:"consumed_since_replenish"`
	NeedsReplenish         bool `json:"needs_replenish"`
}
