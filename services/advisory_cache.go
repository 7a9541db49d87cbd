package services

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// AnswerCache remembers replies for an identical question asked against an
// identical room snapshot.
type AnswerCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, answer string) error
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (string, bool, error) { return "", false, nil }

func (noopCache) Set(context.Context, string, string) error { return nil }

// RedisAnswerCache keeps answers under advisory:answer:<hash> with a TTL.
type RedisAnswerCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAnswerCache(ctx context.Context, redisURL string, ttl time.Duration) (*RedisAnswerCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisAnswerCache{client: client, ttl: ttl}, nil
}

func answerKey(key string) string {
	return "advisory:answer:" + key
}

func (c *RedisAnswerCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.client.Get(ctx, answerKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (c *RedisAnswerCache) Set(ctx context.Context, key, answer string) error {
	return c.client.Set(ctx, answerKey(key), answer, c.ttl).Err()
}

func (c *RedisAnswerCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisAnswerCache) Close() error {
	return c.client.Close()
}
