package pool

import (
	"errors"
	"slices"
)

var ErrEmpty = errors.New("pool has no codes left")

// CodePool is the set of unused codes of one denomination. Order is kept
// stable so that serialized pools diff cleanly, but any code is as good as
// another.
type CodePool struct {
	denomination           Denomination
	codes                  []Code
	consumedSinceReplenish int
}

func NewCodePool(d Denomination) *CodePool {
	return &CodePool{denomination: d}
}

// Reconstruct rebuilds a pool from persisted state, dropping duplicate codes.
func Reconstruct(d Denomination, codes []Code, consumed int) *CodePool {
	p := &CodePool{denomination: d, consumedSinceReplenish: max(consumed, 0)}
	p.Merge(codes)
	p.consumedSinceReplenish = max(consumed, 0)
	return p
}

// Take removes one code and counts it against the current replenish batch.
func (p *CodePool) Take() (Code, error) {
	if len(p.codes) == 0 {
		return "", ErrEmpty
	}
	code := p.codes[0]
	p.codes = slices.Delete(p.codes, 0, 1)
	p.consumedSinceReplenish++
	return code, nil
}

// Merge adds every code not already present and returns how many were added.
// The consumption counter resets only when something new arrived.
func (p *CodePool) Merge(codes []Code) int {
	seen := make(map[Code]struct{}, len(p.codes)+len(codes))
	for _, c := range p.codes {
		seen[c] = struct{}{}
	}
	added := 0
	for _, c := range codes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		p.codes = append(p.codes, c)
		added++
	}
	if added > 0 {
		p.consumedSinceReplenish = 0
	}
	return added
}

func (p *CodePool) Contains(c Code) bool {
	return slices.Contains(p.codes, c)
}

func (p *CodePool) Denomination() Denomination  { return p.denomination }
func (p *CodePool) Remaining() int              { return len(p.codes) }
func (p *CodePool) ConsumedSinceReplenish() int { return p.consumedSinceReplenish }
func (p *CodePool) Codes() []Code               { return slices.Clone(p.codes) }
