package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// CodeReserver holds a short-lived claim on a join code while the game using
// it is being inserted.
type CodeReserver interface {
	// Reserve returns false when another creator already holds the code.
	Reserve(ctx context.Context, code string) (bool, error)
	Release(ctx context.Context, code string) error
}

const DefaultReservationTTL = 30 * time.Second

type RedisCodeReserver struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCodeReserver(client *redis.Client, ttl time.Duration) *RedisCodeReserver {
	if ttl <= 0 {
		ttl = DefaultReservationTTL
	}
	return &RedisCodeReserver{client: client, ttl: ttl}
}

func (r *RedisCodeReserver) Reserve(ctx context.Context, code string) (bool, error) {
	return r.client.SetNX(ctx, reservationKey(code), 1, r.ttl).Result()
}

func (r *RedisCodeReserver) Release(ctx context.Context, code string) error {
	return r.client.Del(ctx, reservationKey(code)).Err()
}

func reservationKey(code string) string {
	return "joincode:" + code
}
