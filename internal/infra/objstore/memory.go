package objstore

import (
	"context"
	"strconv"
	"sync"
)

type memoryObject struct {
	value   []byte
	version uint64
}

// MemoryStore is an in-process Store used for local runs and tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string]memoryObject
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memoryObject)}
}

func (s *MemoryStore) Read(ctx context.Context, key string) (Object, error) {
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.objects[key]
	if !ok {
		return Object{}, errNotFound(key)
	}
	return Object{Value: clone(obj.value), Version: strconv.FormatUint(obj.version, 10)}, nil
}

func (s *MemoryStore) WriteIfMatch(ctx context.Context, key string, value []byte, version string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.objects[key]
	if !ok {
		return "", errNotFound(key)
	}
	if strconv.FormatUint(obj.version, 10) != version {
		return "", errConflict(key)
	}
	next := memoryObject{value: clone(value), version: obj.version + 1}
	s.objects[key] = next
	return strconv.FormatUint(next.version, 10), nil
}

func (s *MemoryStore) WriteIfAbsent(ctx context.Context, key string, value []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[key]; ok {
		return "", errAlreadyExists(key)
	}
	s.objects[key] = memoryObject{value: clone(value), version: 1}
	return "1", nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
