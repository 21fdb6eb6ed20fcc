package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a Redis-backed implementation of app.Store. Each logical key is
// namespaced under a prefix so several profiles can share one Redis database.
// Writes are best-effort: a failed round trip is logged, and readers see the
// value as absent.
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

func NewStore(client *redis.Client, prefix string, ttl time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *Store) Get(key string) (string, bool) {
	value, err := s.client.Get(context.Background(), s.key(key)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		s.logger.Warn("redis get failed, treating as absent", "key", key, "error", err)
		return "", false
	}
	return value, true
}

func (s *Store) Set(key, value string) {
	if err := s.client.Set(context.Background(), s.key(key), value, s.ttl).Err(); err != nil {
		s.logger.Warn("redis set failed", "key", key, "error", err)
	}
}

func (s *Store) Delete(key string) {
	if err := s.client.Del(context.Background(), s.key(key)).Err(); err != nil {
		s.logger.Warn("redis del failed", "key", key, "error", err)
	}
}

func (s *Store) Clear() {
	ctx := context.Background()
	keys, err := s.client.Keys(ctx, s.prefix+":*").Result()
	if err != nil {
		s.logger.Warn("redis scan failed during clear", "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("redis clear failed", "error", err)
	}
}

func (s *Store) key(key string) string {
	return s.prefix + ":" + key
}
