//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"promo-bonus-service/internal/domain/pool"
	"promo-bonus-service/internal/infra/objstore"
	"promo-bonus-service/internal/infra/repository"
	"promo-bonus-service/internal/pkg/config"
	"promo-bonus-service/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

var (
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

	testPoolConfig = config.PoolConfig{
		MinCodesThreshold: 3,
		BatchThreshold:    20,
		TargetCodes:       10,
		Denominations:     []int{100, 200},
	}

	testRetry = shared.RetryPolicy{MaxAttempts: 5, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

	// Enough room for every goroutine in a contention test to eventually win.
	contendedRetry = shared.RetryPolicy{MaxAttempts: 500, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
)

func seedPool(t *testing.T, repo *repository.PoolRepository, d pool.Denomination, consumed int, codes ...pool.Code) {
	t.Helper()
	_, err := repo.Save(context.Background(), pool.Reconstruct(d, codes, consumed), "")
	require.NoError(t, err)
}

func newPoolRepo() (*repository.PoolRepository, *objstore.MemoryStore) {
	store := objstore.NewMemoryStore()
	return repository.NewPoolRepository(store, testLogger), store
}

// recordingTrigger captures triggers synchronously.
type recordingTrigger struct {
	mu    sync.Mutex
	calls []triggerCall
}

type triggerCall struct {
	d       pool.Denomination
	reasons []pool.ReplenishReason
}

func (r *recordingTrigger) Trigger(d pool.Denomination, reasons []pool.ReplenishReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, triggerCall{d: d, reasons: reasons})
}

func (r *recordingTrigger) Calls() []triggerCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]triggerCall(nil), r.calls...)
}

// logBuffer collects log output from concurrent goroutines.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) Count(msg string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Count(b.buf.String(), "msg=\""+msg+"\"")
}

func newCapturingLogger() (*slog.Logger, *logBuffer) {
	b := &logBuffer{}
	return slog.New(slog.NewTextHandler(b, nil)), b
}
