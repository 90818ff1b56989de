package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of the go-redis client the store uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisConfig configures a RedisStore.
type RedisConfig struct {
	Client RedisClient
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.New("records: redis config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.New("records: redis client cannot be nil")
	}
	return nil
}

// RedisStore keeps records in redis so they can be shared between machines.
type RedisStore struct {
	client RedisClient
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(cfg *RedisConfig) (*RedisStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &RedisStore{client: cfg.Client}, nil
}

// DialRedis builds a go-redis client for addr. Redis connects lazily, so this
// never touches the network.
func DialRedis(addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, errors.New("records: redis address is required")
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}
