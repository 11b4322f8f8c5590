package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"entnt-rental-backend/internal/logger"
)

// RedisStore persists the documents as plain redis strings. Every operation
// runs through a circuit breaker: the stores absorb persistence failures
// anyway, and once redis is down there is no point timing out on every
// single mutation.
type RedisStore struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker
}

func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "Redis-KV",
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		// A cache miss is a normal answer, not a backend failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &RedisStore{client: client, breaker: breaker}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.breaker.Execute(func() (interface{}, error) {
		data, err := s.client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return data, err
	})
	if err != nil {
		return nil, err
	}
	return value.([]byte), nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.client.Set(ctx, key, value, 0).Err()
	})
	return err
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.client.Del(ctx, key).Err()
	})
	return err
}

func (s *RedisStore) Close() error { return s.client.Close() }
