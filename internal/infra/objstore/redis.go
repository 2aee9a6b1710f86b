package objstore

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Each object lives in a hash with fields "v" (payload) and "ver" (integer version).

// KEYS[1] = object key
// ARGV[1] = new payload
// ARGV[2] = expected version
// returns -1 when missing, 0 on version mismatch, new version otherwise
var redisWriteIfMatchScript = redis.NewScript(`
local cur = redis.call("HGET", KEYS[1], "ver")
if not cur then
  return -1
end
if cur ~= ARGV[2] then
  return 0
end
local nv = tonumber(cur) + 1
redis.call("HSET", KEYS[1], "v", ARGV[1], "ver", nv)
return nv
`)

// KEYS[1] = object key
// ARGV[1] = payload
// returns 0 when the key already exists, 1 otherwise
var redisWriteIfAbsentScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
  return 0
end
redis.call("HSET", KEYS[1], "v", ARGV[1], "ver", 1)
return 1
`)

type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Read(ctx context.Context, key string) (Object, error) {
	vals, err := s.client.HMGet(ctx, s.prefix+key, "v", "ver").Result()
	if err != nil {
		return Object{}, errFailure("redis hmget", key, err)
	}
	if len(vals) != 2 || vals[0] == nil || vals[1] == nil {
		return Object{}, errNotFound(key)
	}
	payload, ok1 := vals[0].(string)
	version, ok2 := vals[1].(string)
	if !ok1 || !ok2 {
		return Object{}, errFailure("redis hmget", key, errors.New("unexpected field types"))
	}
	return Object{Value: []byte(payload), Version: version}, nil
}

func (s *RedisStore) WriteIfMatch(ctx context.Context, key string, value []byte, version string) (string, error) {
	res, err := redisWriteIfMatchScript.Run(ctx, s.client, []string{s.prefix + key}, value, version).Int64()
	if err != nil {
		return "", errFailure("redis cas", key, err)
	}
	switch {
	case res < 0:
		return "", errNotFound(key)
	case res == 0:
		return "", errConflict(key)
	}
	return strconv.FormatInt(res, 10), nil
}

func (s *RedisStore) WriteIfAbsent(ctx context.Context, key string, value []byte) (string, error) {
	res, err := redisWriteIfAbsentScript.Run(ctx, s.client, []string{s.prefix + key}, value).Int64()
	if err != nil {
		return "", errFailure("redis create", key, err)
	}
	if res == 0 {
		return "", errAlreadyExists(key)
	}
	return "1", nil
}
