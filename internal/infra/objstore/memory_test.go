//go:build unit

package objstore_test

import (
	"context"
	"testing"

	"promo-bonus-service/internal/infra"
	"promo-bonus-service/internal/infra/objstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("read of a missing key", func(t *testing.T) {
		s := objstore.NewMemoryStore()

		_, err := s.Read(ctx, "pool:100")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("create then update", func(t *testing.T) {
		s := objstore.NewMemoryStore()

		v1, err := s.WriteIfAbsent(ctx, "k", []byte(`{"a":1}`))
		require.NoError(t, err)

		obj, err := s.Read(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, v1, obj.Version)
		assert.JSONEq(t, `{"a":1}`, string(obj.Value))

		v2, err := s.WriteIfMatch(ctx, "k", []byte(`{"a":2}`), v1)
		require.NoError(t, err)
		assert.NotEqual(t, v1, v2)

		obj, err = s.Read(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, v2, obj.Version)
		assert.JSONEq(t, `{"a":2}`, string(obj.Value))
	})

	t.Run("create of an existing key", func(t *testing.T) {
		s := objstore.NewMemoryStore()
		_, err := s.WriteIfAbsent(ctx, "k", []byte("x"))
		require.NoError(t, err)

		_, err = s.WriteIfAbsent(ctx, "k", []byte("y"))
		assert.True(t, infra.IsKind(err, infra.KindAlreadyExists))
	})

	t.Run("stale version conflicts", func(t *testing.T) {
		s := objstore.NewMemoryStore()
		v1, err := s.WriteIfAbsent(ctx, "k", []byte("x"))
		require.NoError(t, err)
		_, err = s.WriteIfMatch(ctx, "k", []byte("y"), v1)
		require.NoError(t, err)

		_, err = s.WriteIfMatch(ctx, "k", []byte("z"), v1)
		assert.True(t, infra.IsKind(err, infra.KindConflict))

		obj, err := s.Read(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "y", string(obj.Value))
	})

	t.Run("update of a missing key", func(t *testing.T) {
		s := objstore.NewMemoryStore()

		_, err := s.WriteIfMatch(ctx, "k", []byte("x"), "1")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("stored bytes are not aliased", func(t *testing.T) {
		s := objstore.NewMemoryStore()
		payload := []byte("abc")
		_, err := s.WriteIfAbsent(ctx, "k", payload)
		require.NoError(t, err)
		payload[0] = 'z'

		obj, err := s.Read(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(obj.Value))
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := objstore.NewMemoryStore()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := s.Read(cctx, "k")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
