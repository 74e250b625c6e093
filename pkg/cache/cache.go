package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLProperties = 30 * time.Second // property list (refreshed often by admins)
	TTLProperty   = 5 * time.Minute  // single property detail
	TTLStats      = 1 * time.Minute  // admin dashboard counters
	TTLDefault    = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixProperties = "properties:"
	PrefixProperty   = "property:"
	PrefixStats      = "stats:"
)

// ErrCacheMiss is returned when a key does not exist
var ErrCacheMiss = errors.New("cache miss")

// Service Redis-backed cache service interface
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Property collection cache
	GetProperties(ctx context.Context, dest interface{}) error
	SetProperties(ctx context.Context, data interface{}) error
	InvalidateProperties(ctx context.Context) error
}

type service struct {
	client *redis.Client
}

// NewService creates a Redis cache service
func NewService(client *redis.Client) Service {
	return &service{client: client}
}

func (s *service) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("cache get %s: %w", key, err)
	}
	return json.Unmarshal(data, dest)
}

func (s *service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}
	if ttl <= 0 {
		ttl = TTLDefault
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *service) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *service) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *service) GetProperties(ctx context.Context, dest interface{}) error {
	return s.Get(ctx, PrefixProperties+"all", dest)
}

func (s *service) SetProperties(ctx context.Context, data interface{}) error {
	return s.Set(ctx, PrefixProperties+"all", data, TTLProperties)
}

func (s *service) InvalidateProperties(ctx context.Context) error {
	return s.Delete(ctx, PrefixProperties+"all")
}
