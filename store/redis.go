package store

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"brf/services/logger"
)

// RedisStore lưu các bản ghi trong Redis, dùng khi nhiều instance của demo
// server chia sẻ một kho dữ liệu.
type RedisStore struct {
	rdb *redis.Client
	log logger.Logger
}

func NewRedisStore(rdb *redis.Client, log logger.Logger) *RedisStore {
	if log == nil {
		log = logger.Nop{}
	}
	return &RedisStore{rdb: rdb, log: log}
}

func (s *RedisStore) Read(ctx context.Context, key string, target interface{}) bool {
	raw, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		s.log.Error("store: redis get %q: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return false
	}
	return true
}

func (s *RedisStore) Write(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error("store: marshal %q: %v", key, err)
		return
	}
	// Records never expire; retention is handled by the cleanup job.
	if err := s.rdb.Set(ctx, key, raw, 0).Err(); err != nil {
		s.log.Error("store: redis set %q: %v", key, err)
	}
}

func (s *RedisStore) Delete(ctx context.Context, key string) {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.log.Error("store: redis del %q: %v", key, err)
	}
}
