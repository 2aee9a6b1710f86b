package pool

type ReplenishReason string

const (
	ReasonLowStock      ReplenishReason = "low_stock"
	ReasonBatchConsumed ReplenishReason = "batch_consumed"
)

type Thresholds struct {
	MinCodes int
	Batch    int
}

// NeedsReplenish reports whether the pool crossed either threshold.
func (p *CodePool) NeedsReplenish(t Thresholds) (bool, []ReplenishReason) {
	var reasons []ReplenishReason
	if p.Remaining() < t.MinCodes {
		reasons = append(reasons, ReasonLowStock)
	}
	if t.Batch > 0 && p.consumedSinceReplenish >= t.Batch {
		reasons = append(reasons, ReasonBatchConsumed)
	}
	return len(reasons) > 0, reasons
}

// Shortfall is how many codes bring the pool up to target, never less than one.
func (p *CodePool) Shortfall(target int) int {
	return max(target-p.Remaining(), 1)
}
