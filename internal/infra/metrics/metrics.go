// Package metrics exposes Prometheus counters for allocation, replenishment
// and ledger traffic. A nil *Metrics records nothing.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSuccess = "success"
	ResultNoStock = "no_stock"
	ResultBusy    = "busy"
	ResultError   = "error"
)

type Metrics struct {
	allocations   *prometheus.CounterVec
	replenishes   *prometheus.CounterVec
	codesAdded    *prometheus.CounterVec
	poolRemaining *prometheus.GaugeVec
	ledgerEvents  *prometheus.CounterVec
	casConflicts  *prometheus.CounterVec
}

func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		allocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promo_code_allocations_total",
			Help: "Code allocation attempts by denomination and result.",
		}, []string{"denomination", "result"}),
		replenishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promo_pool_replenishes_total",
			Help: "Replenish runs by denomination and result.",
		}, []string{"denomination", "result"}),
		codesAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promo_pool_codes_added_total",
			Help: "New codes merged into pools.",
		}, []string{"denomination"}),
		poolRemaining: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "promo_pool_remaining_codes",
			Help: "Codes left in the pool after the last write seen by this process.",
		}, []string{"denomination"}),
		ledgerEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bonus_ledger_events_total",
			Help: "Ledger events by operation and outcome.",
		}, []string{"operation", "outcome"}),
		casConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "object_store_conflicts_total",
			Help: "Conditional writes rejected because the object changed.",
		}, []string{"op"}),
	}

	registerer.MustRegister(
		m.allocations,
		m.replenishes,
		m.codesAdded,
		m.poolRemaining,
		m.ledgerEvents,
		m.casConflicts,
	)
	return m
}

func (m *Metrics) Allocation(denomination int, result string) {
	if m == nil {
		return
	}
	m.allocations.WithLabelValues(strconv.Itoa(denomination), result).Inc()
}

func (m *Metrics) Replenish(denomination int, result string, added int) {
	if m == nil {
		return
	}
	d := strconv.Itoa(denomination)
	m.replenishes.WithLabelValues(d, result).Inc()
	if added > 0 {
		m.codesAdded.WithLabelValues(d).Add(float64(added))
	}
}

func (m *Metrics) PoolRemaining(denomination, remaining int) {
	if m == nil {
		return
	}
	m.poolRemaining.WithLabelValues(strconv.Itoa(denomination)).Set(float64(remaining))
}

func (m *Metrics) LedgerEvent(operation, outcome string) {
	if m == nil {
		return
	}
	m.ledgerEvents.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) Conflict(op string) {
	if m == nil {
		return
	}
	m.casConflicts.WithLabelValues(op).Inc()
}
