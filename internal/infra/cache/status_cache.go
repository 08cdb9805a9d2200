// Package cache holds the payment status read-through cache.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// keyPaymentStatus is payment_status:{order_id} -> PaymentStatusSnapshot JSON.
const keyPaymentStatus = "storefront:payment_status:%s"

const defaultTTL = 5 * time.Minute

// Params holds the fx dependencies of the cache.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewPaymentStatusCache returns a redis cache, or a no-op cache when redis.addr is unset.
func NewPaymentStatusCache(params Params) service.PaymentStatusCache {
	ttl := defaultTTL
	if params.Config.Payment != nil && params.Config.Payment.StatusCacheTTL > 0 {
		ttl = params.Config.Payment.StatusCacheTTL
	}

	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, payment status cache disabled")

		return noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional: an unreachable redis only degrades reads.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisStatusCache(client, ttl)
}

// redisStatusCache implements service.PaymentStatusCache.
type redisStatusCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisStatusCache wraps an existing client.
func NewRedisStatusCache(client redis.Cmdable, ttl time.Duration) service.PaymentStatusCache {
	return &redisStatusCache{client: client, ttl: ttl}
}

func statusKey(orderID uuid.UUID) string {
	return fmt.Sprintf(keyPaymentStatus, orderID)
}

func (c *redisStatusCache) Get(ctx context.Context, orderID uuid.UUID) (*service.PaymentStatusSnapshot, error) {
	raw, err := c.client.Get(ctx, statusKey(orderID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read payment status cache")
	}

	var snapshot service.PaymentStatusSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		// Treat a corrupt entry as a miss.
		return nil, nil
	}

	return &snapshot, nil
}

func (c *redisStatusCache) Set(ctx context.Context, snapshot *service.PaymentStatusSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.client.Set(ctx, statusKey(snapshot.OrderID), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write payment status cache")
	}

	return nil
}

func (c *redisStatusCache) Invalidate(ctx context.Context, orderID uuid.UUID) error {
	if err := c.client.Del(ctx, statusKey(orderID)).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate payment status cache")
	}

	return nil
}

// noopCache always misses.
type noopCache struct{}

func (noopCache) Get(context.Context, uuid.UUID) (*service.PaymentStatusSnapshot, error) {
	return nil, nil
}

func (noopCache) Set(context.Context, *service.PaymentStatusSnapshot) error {
	return nil
}

func (noopCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}
