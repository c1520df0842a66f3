package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"turfbook/internal/models"
)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// AvailabilityCache keeps per-turf, per-date availability grids in
// Redis. All methods are nil-receiver safe so the API can run without
// a cache: a nil cache behaves as a permanent miss.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(cfg Config) (*AvailabilityCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 60 * time.Second
	}

	return &AvailabilityCache{client: rdb, ttl: ttl}, nil
}

func availabilityKey(turfID int64, date string) string {
	return fmt.Sprintf("availability:%d:%s", turfID, date)
}

// GetAvailability returns the cached grid, or (nil, false, nil) on a
// miss.
func (c *AvailabilityCache) GetAvailability(ctx context.Context, turfID int64, date string) ([]models.AvailabilitySlot, bool, error) {
	if c == nil {
		return nil, false, nil
	}

	data, err := c.client.Get(ctx, availabilityKey(turfID, date)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache lookup error: %w", err)
	}

	var slots []models.AvailabilitySlot
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, false, fmt.Errorf("invalid cached availability: %w", err)
	}

	return slots, true, nil
}

func (c *AvailabilityCache) SetAvailability(ctx context.Context, turfID int64, date string, slots []models.AvailabilitySlot) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("failed to marshal availability: %w", err)
	}

	return c.client.Set(ctx, availabilityKey(turfID, date), data, c.ttl).Err()
}

// Invalidate drops the cached grid after a booking or cancellation
// touches the date.
func (c *AvailabilityCache) Invalidate(ctx context.Context, turfID int64, date string) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, availabilityKey(turfID, date)).Err()
}

func (c *AvailabilityCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
