package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfbook/internal/models"
)

func newTestCache(t *testing.T) (*AvailabilityCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := NewAvailabilityCache(Config{Addr: mr.Addr(), TTL: 30 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return c, mr
}

func TestAvailabilityCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	price := 500.0
	slots := []models.AvailabilitySlot{
		{Hour: 9, Available: true, Priced: true, Price: &price},
		{Hour: 10, Available: false, Priced: true, Price: &price},
	}

	_, hit, err := c.GetAvailability(ctx, 1, "2026-09-01")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.SetAvailability(ctx, 1, "2026-09-01", slots))

	got, hit, err := c.GetAvailability(ctx, 1, "2026-09-01")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, slots, got)
}

func TestAvailabilityCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	price := 500.0
	slots := []models.AvailabilitySlot{{Hour: 9, Available: true, Priced: true, Price: &price}}
	require.NoError(t, c.SetAvailability(ctx, 7, "2026-09-01", slots))

	require.NoError(t, c.Invalidate(ctx, 7, "2026-09-01"))

	_, hit, err := c.GetAvailability(ctx, 7, "2026-09-01")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestAvailabilityCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	price := 500.0
	slots := []models.AvailabilitySlot{{Hour: 9, Available: true, Priced: true, Price: &price}}
	require.NoError(t, c.SetAvailability(ctx, 1, "2026-09-01", slots))

	mr.FastForward(time.Minute)

	_, hit, err := c.GetAvailability(ctx, 1, "2026-09-01")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestNilCacheIsMiss(t *testing.T) {
	var c *AvailabilityCache
	ctx := context.Background()

	_, hit, err := c.GetAvailability(ctx, 1, "2026-09-01")
	assert.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, c.SetAvailability(ctx, 1, "2026-09-01", nil))
	assert.NoError(t, c.Invalidate(ctx, 1, "2026-09-01"))
	assert.NoError(t, c.Close())
}
