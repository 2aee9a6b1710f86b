//go:build e2e

package dbtest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"promo-bonus-service/internal/domain/pool"
	"promo-bonus-service/internal/infra/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// writes a pool object directly, bypassing the API, so tests control the exact codes
func SeedPool(t *testing.T, db DBLike, prefix string, d pool.Denomination, codes ...string) {
	t.Helper()

	payload, err := json.Marshal(map[string]any{
		"denomination":             d.Int(),
		"codes":                    codes,
		"consumed_since_replenish": 0,
	})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = db.Exec(ctx, `
		INSERT INTO objects (key, value, version) VALUES ($1, $2, 1)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, version = objects.version + 1, updated_at = now()`,
		prefix+repository.PoolKey(d), payload)
	require.NoError(t, err)
}

// reads the raw stored version of a key, used to prove that a request wrote nothing
func ObjectVersion(t *testing.T, db DBLike, key string) int64 {
	t.Helper()

	var version int64
	err := db.QueryRow(context.Background(), `SELECT version FROM objects WHERE key = $1`, key).Scan(&version)
	require.NoError(t, err)
	return version
}

// empties the object table between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE objects")
	return err
}
