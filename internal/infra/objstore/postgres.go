package objstore

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxQuerier is satisfied by *pgxpool.Pool and pgx.Tx.
type PgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const createObjectsTable = `
CREATE TABLE IF NOT EXISTS objects (
    key        TEXT PRIMARY KEY,
    value      BYTEA NOT NULL,
    version    BIGINT NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore keeps objects in a single table with a monotonically
// increasing version column.
type PostgresStore struct {
	db     PgxQuerier
	prefix string
}

func NewPostgresStore(db PgxQuerier, prefix string) *PostgresStore {
	return &PostgresStore{db: db, prefix: prefix}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createObjectsTable); err != nil {
		return errFailure("pg create table", "objects", err)
	}
	return nil
}

func (s *PostgresStore) Read(ctx context.Context, key string) (Object, error) {
	var (
		value   []byte
		version int64
	)
	err := s.db.QueryRow(ctx,
		`SELECT value, version FROM objects WHERE key = $1`,
		s.prefix+key,
	).Scan(&value, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Object{}, errNotFound(key)
		}
		return Object{}, errFailure("pg select", key, err)
	}
	return Object{Value: value, Version: strconv.FormatInt(version, 10)}, nil
}

func (s *PostgresStore) WriteIfMatch(ctx context.Context, key string, value []byte, version string) (string, error) {
	expected, err := strconv.ParseInt(version, 10, 64)
	if err != nil {
		return "", errConflict(key)
	}

	var next int64
	err = s.db.QueryRow(ctx,
		`UPDATE objects SET value = $2, version = version + 1, updated_at = now()
		 WHERE key = $1 AND version = $3
		 RETURNING version`,
		s.prefix+key, value, expected,
	).Scan(&next)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", s.missOrConflict(ctx, key)
		}
		return "", errFailure("pg update", key, err)
	}
	return strconv.FormatInt(next, 10), nil
}

func (s *PostgresStore) WriteIfAbsent(ctx context.Context, key string, value []byte) (string, error) {
	tag, err := s.db.Exec(ctx,
		`INSERT INTO objects (key, value, version) VALUES ($1, $2, 1)
		 ON CONFLICT (key) DO NOTHING`,
		s.prefix+key, value,
	)
	if err != nil {
		return "", errFailure("pg insert", key, err)
	}
	if tag.RowsAffected() == 0 {
		return "", errAlreadyExists(key)
	}
	return "1", nil
}

// missOrConflict tells a vanished row from a stale version after an UPDATE matched nothing.
func (s *PostgresStore) missOrConflict(ctx context.Context, key string) error {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM objects WHERE key = $1)`,
		s.prefix+key,
	).Scan(&exists)
	if err != nil {
		return errFailure("pg select", key, err)
	}
	if !exists {
		return errNotFound(key)
	}
	return errConflict(key)
}
