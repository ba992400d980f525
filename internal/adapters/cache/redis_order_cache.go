package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"fruit-order-service/internal/domain"
	"fruit-order-service/internal/platform/logger"
	"fruit-order-service/internal/platform/obs"
	"fruit-order-service/internal/ports"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultOrderTTL = 10 * time.Minute

// Cached form of an order. Weight profiles are kept in their textual encoding
// and decoded (and so re-validated) on every hit.
type cachedOrder struct {
	ID     string        `json:"id"`
	Fruits []cachedFruit `json:"fruits"`
}

type cachedFruit struct {
	FruitType  string `json:"fruit_type"`
	WeightData string `json:"weight_data"`
}

// RedisOrderCache is a read-through, write-through cache in front of another
// OrderRepository. Listing always goes to the backing store. Redis failures
// are logged and never fail a call the backing store can answer.
type RedisOrderCache struct {
	Client *redis.Client
	Next   ports.OrderRepository
	TTL    time.Duration
}

func NewRedisOrderCache(client *redis.Client, next ports.OrderRepository) *RedisOrderCache {
	return &RedisOrderCache{Client: client, Next: next, TTL: defaultOrderTTL}
}

func orderKey(id domain.OrderID) string { return "order:" + id.String() }

// Store the order in the backing repository, then refresh the cache entry.
// Once the backing store has committed, cache errors only drop the entry.
func (c *RedisOrderCache) SaveOrder(ctx context.Context, order *domain.Order) (err error) {
	defer obs.Time(ctx, "orders.cache.SaveOrder")(&err)

	if c.Next == nil {
		return errors.New("order cache: backing repository is nil")
	}
	if err := c.Next.SaveOrder(ctx, order); err != nil {
		return err
	}

	c.refresh(ctx, order)
	return nil
}

// Return the cached order, loading and caching it from the backing store on a miss.
func (c *RedisOrderCache) GetOrder(ctx context.Context, id domain.OrderID) (_ *domain.Order, err error) {
	defer obs.Time(ctx, "orders.cache.GetOrder")(&err)

	if c.Next == nil {
		return nil, errors.New("order cache: backing repository is nil")
	}

	raw, err := c.Client.Get(ctx, orderKey(id)).Bytes()
	switch {
	case err == nil:
		// A cached entry that fails validation is surfaced, not bypassed.
		return decodeCachedOrder(id, raw)
	case !errors.Is(err, redis.Nil):
		logger.L().Warn("order cache get failed", "order_id", id.String(), "err", err)
	}

	order, err := c.Next.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	c.refresh(ctx, order)
	return order, nil
}

func (c *RedisOrderCache) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	if c.Next == nil {
		return nil, errors.New("order cache: backing repository is nil")
	}
	return c.Next.ListOrders(ctx)
}

// Write order to the cache. On failure the key is deleted so a stale copy is
// never served; the delete itself is best effort.
func (c *RedisOrderCache) refresh(ctx context.Context, order *domain.Order) {
	if err := c.put(ctx, order); err != nil {
		logger.L().Warn("order cache put failed", "order_id", order.ID.String(), "err", err)
		if err := c.Client.Del(ctx, orderKey(order.ID)).Err(); err != nil {
			logger.L().Warn("order cache delete failed", "order_id", order.ID.String(), "err", err)
		}
	}
}

func decodeCachedOrder(id domain.OrderID, raw []byte) (*domain.Order, error) {
	var cached cachedOrder
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("order cache: decode %s: %w", id, err)
	}

	order := &domain.Order{ID: id}
	for i, cf := range cached.Fruits {
		t, err := domain.ParseFruitType(cf.FruitType)
		if err != nil {
			return nil, fmt.Errorf("cached fruit #%d: %w", i, err)
		}
		profile, err := domain.DecodeProfile(cf.WeightData)
		if err != nil {
			return nil, fmt.Errorf("cached fruit #%d: %w", i, err)
		}
		f, err := domain.NewFruit(t, profile)
		if err != nil {
			return nil, fmt.Errorf("cached fruit #%d: %w", i, err)
		}
		order.AddFruit(f)
	}
	return order, nil
}

func (c *RedisOrderCache) put(ctx context.Context, order *domain.Order) error {
	cached := cachedOrder{
		ID:     order.ID.String(),
		Fruits: make([]cachedFruit, 0, len(order.Fruits)),
	}
	for _, f := range order.Fruits {
		cached.Fruits = append(cached.Fruits, cachedFruit{
			FruitType:  string(f.Type),
			WeightData: domain.EncodeProfile(f.Weights),
		})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, orderKey(order.ID), raw, c.TTL).Err()
}
