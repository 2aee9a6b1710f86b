//go:build integration

package objstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"promo-bonus-service/internal/infra"
	"promo-bonus-service/internal/infra/objstore"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

func startContainer(t *testing.T, req testcontainers.ContainerRequest, port string) (string, nat.Port) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start %s", req.Image)
	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		_ = c.Terminate(stopCtx)
	})

	host, err := c.Host(ctx)
	require.NoError(t, err)
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	require.NoError(t, err)
	return host, mapped
}

// storeContract runs the same conditional-write checks against any backend.
type storeContract struct {
	suite.Suite
	store objstore.Store
	seq   int
}

func (s *storeContract) key() string {
	s.seq++
	return fmt.Sprintf("it:%s:%d", s.T().Name(), s.seq)
}

func (s *storeContract) TestLifecycle() {
	ctx := context.Background()
	key := s.key()

	_, err := s.store.Read(ctx, key)
	s.True(infra.IsKind(err, infra.KindNotFound))

	v1, err := s.store.WriteIfAbsent(ctx, key, []byte(`{"n":1}`))
	s.Require().NoError(err)

	_, err = s.store.WriteIfAbsent(ctx, key, []byte(`{"n":9}`))
	s.True(infra.IsKind(err, infra.KindAlreadyExists))

	v2, err := s.store.WriteIfMatch(ctx, key, []byte(`{"n":2}`), v1)
	s.Require().NoError(err)
	s.NotEqual(v1, v2)

	_, err = s.store.WriteIfMatch(ctx, key, []byte(`{"n":3}`), v1)
	s.True(infra.IsKind(err, infra.KindConflict))

	obj, err := s.store.Read(ctx, key)
	s.Require().NoError(err)
	s.Equal(v2, obj.Version)
	s.JSONEq(`{"n":2}`, string(obj.Value))
}

func (s *storeContract) TestUpdateMissingKey() {
	_, err := s.store.WriteIfMatch(context.Background(), s.key(), []byte("{}"), "1")
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *storeContract) TestConcurrentWritersOneWins() {
	ctx := context.Background()
	key := s.key()
	v1, err := s.store.WriteIfAbsent(ctx, key, []byte(`{}`))
	s.Require().NoError(err)

	const writers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.WriteIfMatch(ctx, key, []byte(fmt.Sprintf(`{"w":%d}`, i)), v1)
			if err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(1, winners)
}

type PostgresStoreSuite struct {
	storeContract
}

func (s *PostgresStoreSuite) SetupSuite() {
	host, port := startContainer(s.T(), testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}, "5432/tcp")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
	pool, err := pgxpool.New(ctx, dsn)
	s.Require().NoError(err)
	s.T().Cleanup(pool.Close)

	store := objstore.NewPostgresStore(pool, "test/")
	s.Require().NoError(store.EnsureSchema(ctx))
	s.store = store
}

func TestPostgresStore(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

type RedisStoreSuite struct {
	storeContract
}

func (s *RedisStoreSuite) SetupSuite() {
	host, port := startContainer(s.T(), testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
	}, "6379/tcp")

	client := redis.NewClient(&redis.Options{Addr: host + ":" + port.Port()})
	s.T().Cleanup(func() { _ = client.Close() })
	s.Require().NoError(client.Ping(context.Background()).Err())

	s.store = objstore.NewRedisStore(client, "test/")
}

func TestRedisStore(t *testing.T) {
	suite.Run(t, new(RedisStoreSuite))
}
