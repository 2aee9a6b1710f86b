// Package producer supplies new promo codes to the replenish coordinator.
package producer

import (
	"context"
	"strings"

	"promo-bonus-service/internal/domain/pool"
	"promo-bonus-service/internal/usecase/commands"

	"github.com/lithammer/shortuuid/v4"
)

const (
	letterAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	codeAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Generator mints BON{denomination}{random} codes locally. The random tail
// always opens with a letter so the denomination can be read back from the code.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Produce(ctx context.Context, d pool.Denomination, count int) (commands.ProducerBatch, error) {
	batch := commands.ProducerBatch{Requested: count}
	seen := make(map[string]struct{}, count)
	for len(batch.Codes) < count {
		if err := ctx.Err(); err != nil {
			return batch, err
		}
		code := NewCode(d)
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		batch.Codes = append(batch.Codes, code)
	}
	return batch, nil
}

func NewCode(d pool.Denomination) string {
	n := pool.RandomPartLen(d)
	var b strings.Builder
	b.WriteString(pool.CodePrefix)
	b.WriteString(d.String())
	b.WriteString(shortuuid.NewWithAlphabet(letterAlphabet)[:1])
	b.WriteString(shortuuid.NewWithAlphabet(codeAlphabet)[:n-1])
	return b.String()
}
