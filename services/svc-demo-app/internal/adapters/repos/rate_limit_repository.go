package repos

import (
	"context"
	"fmt"
	"time"

	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/config"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/infrastructure"
	"github.com/throttled/throttled/v2"
	"github.com/throttled/throttled/v2/store/memstore"
)

const rateLimitKeyPrefix = "k8s-demo-app:ratelimit:"

// RateLimitStore implements throttled.GCRAStoreCtx on KeyDB so every replica shares
// one budget for the control endpoints.
type RateLimitStore struct {
	client *infrastructure.KeydbClient
	prefix string
}

var _ throttled.GCRAStoreCtx = (*RateLimitStore)(nil)

func NewRateLimitStore(client *infrastructure.KeydbClient) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: rateLimitKeyPrefix,
	}
}

// NewGCRAStore picks the store named by cfg.Store. client may be nil for the memory store.
func NewGCRAStore(cfg config.ThrottledRateLimiting, client *infrastructure.KeydbClient) (throttled.GCRAStoreCtx, error) {
	switch cfg.Store {
	case config.RateLimitStoreRedis:
		if client == nil {
			return nil, fmt.Errorf("rate limit store %q requires a cache client", cfg.Store)
		}

		return NewRateLimitStore(client), nil
	case config.RateLimitStoreMemory, "":
		store, err := memstore.NewCtx(int(cfg.MaxKeys))
		if err != nil {
			return nil, fmt.Errorf("creating in-memory rate limit store: %w", err)
		}

		return store, nil
	default:
		return nil, fmt.Errorf("unknown rate limit store %q", cfg.Store)
	}
}

func (s *RateLimitStore) GetWithTime(ctx context.Context, key string) (int64, time.Time, error) {
	return s.client.GetInt64(ctx, s.prefix+key)
}

func (s *RateLimitStore) SetIfNotExistsWithTTL(ctx context.Context, key string, value int64, ttl time.Duration) (bool, error) {
	return s.client.SetInt64NX(ctx, s.prefix+key, value, ttl)
}

func (s *RateLimitStore) CompareAndSwapWithTTL(ctx context.Context, key string, old, new int64, ttl time.Duration) (bool, error) {
	return s.client.CompareAndSwapInt64(ctx, s.prefix+key, old, new, ttl)
}
