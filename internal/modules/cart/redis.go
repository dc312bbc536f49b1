package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// cartField is the hash field holding the JSON line item array under each
// session key.
const cartField = "cart"

// RedisStore persists carts in a Redis hash per session.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore accepts either a redis:// URL or a plain "host:port"
// address.
func NewRedisStore(addr string) *RedisStore {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{
			Addr:         addr,
			MinIdleConns: 1,
			DialTimeout:  10 * time.Second,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			PoolSize:     10,
		}
	}
	return &RedisStore{client: redis.NewClient(opts)}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Ping(pingCtx).Err()
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]LineItem, error) {
	val, err := s.client.HGet(ctx, sessionID, cartField).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis HGet")
	}
	return decodeItems([]byte(val)), nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "encode cart")
	}
	if err := s.client.HSet(ctx, sessionID, cartField, data).Err(); err != nil {
		return errors.Wrap(err, "redis HSet")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.HDel(ctx, sessionID, cartField).Err(); err != nil {
		return errors.Wrap(err, "redis HDel")
	}
	return nil
}
