// Package cache provides a Redis-backed read cache for the product catalog.
// Cache failures degrade to database reads and never fail the request.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ecomshop/config"
	"ecomshop/internal/domain/entity"
	"ecomshop/internal/domain/lifecycle"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	productKeyPrefix = "product:"
	defaultCacheTTL  = 5 * time.Minute
)

// ProductCache caches single products by ID. List pages are intentionally not
// cached: invalidating them on every admin edit costs more than the reads save.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewProductCache creates the Redis client and wires its lifecycle.
// Returns nil when Redis is not configured; callers treat a nil cache as a miss.
func NewProductCache(params Params) (*ProductCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, product cache disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = defaultCacheTTL
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &ProductCache{
		client: client,
		ttl:    ttl,
		logger: params.Logger,
	}, nil
}

// Get returns the cached product, or nil on a miss or any cache error.
func (c *ProductCache) Get(ctx context.Context, id uuid.UUID) *entity.Product {
	if c == nil {
		return nil
	}

	raw, err := c.client.Get(ctx, productKeyPrefix+id.String()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Product cache read failed", slog.String("error", err.Error()))
		}

		return nil
	}

	var product entity.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		c.logger.Warn("Product cache entry corrupt, dropping", slog.String("id", id.String()))
		c.client.Del(ctx, productKeyPrefix+id.String())

		return nil
	}

	return &product
}

// Set stores a product with the configured TTL. Errors are logged, not returned.
func (c *ProductCache) Set(ctx context.Context, product *entity.Product) {
	if c == nil || product == nil {
		return
	}

	raw, err := json.Marshal(product)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, productKeyPrefix+product.ID.String(), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Product cache write failed", slog.String("error", err.Error()))
	}
}

// Invalidate drops a product from the cache after a write.
func (c *ProductCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, productKeyPrefix+id.String()).Err(); err != nil {
		c.logger.Warn("Product cache invalidation failed", slog.String("error", err.Error()))
	}
}
