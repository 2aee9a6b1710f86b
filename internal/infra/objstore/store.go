// Package objstore provides versioned object storage with conditional writes.
//
// Every backend offers the same three primitives. A version token returned by
// Read or by a successful write must be passed to the next WriteIfMatch; the
// write fails with a CONFLICT repository error when another writer got there
// first. There is no cross-key transaction and no lock.
package objstore

//go:generate mockgen -source=store.go -destination=../../../tests/mock/objstore/store.go -package=objstoremock

import (
	"context"

	"promo-bonus-service/internal/infra"
)

type Object struct {
	Value   []byte
	Version string
}

type Store interface {
	// Read returns a NOT_FOUND repository error when the key has never been written.
	Read(ctx context.Context, key string) (Object, error)
	// WriteIfMatch returns a CONFLICT repository error when the stored version differs.
	WriteIfMatch(ctx context.Context, key string, value []byte, version string) (string, error)
	// WriteIfAbsent returns an ALREADY_EXISTS repository error when the key exists.
	WriteIfAbsent(ctx context.Context, key string, value []byte) (string, error)
}

func errNotFound(key string) error {
	return infra.NewRepoErr(infra.KindNotFound, "object "+key+" not found", nil)
}

func errConflict(key string) error {
	return infra.NewRepoErr(infra.KindConflict, "object "+key+" changed since read", nil)
}

func errAlreadyExists(key string) error {
	return infra.NewRepoErr(infra.KindAlreadyExists, "object "+key+" already exists", nil)
}

func errFailure(op, key string, err error) error {
	return infra.NewRepoErr(infra.KindStoreFailure, op+" "+key, err)
}
