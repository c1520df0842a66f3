package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAvailabilityFutureDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.Local)
	day := time.Date(2026, 9, 3, 0, 0, 0, 0, time.Local)

	occupied := map[int]bool{17: true}
	prices := map[int]float64{17: 500, 18: 500}

	slots := buildAvailability(day, occupied, prices, now)
	require.Len(t, slots, 24)

	assert.False(t, slots[17].Available)
	assert.True(t, slots[17].Priced)

	assert.True(t, slots[18].Available)
	assert.True(t, slots[18].Priced)
	require.NotNil(t, slots[18].Price)
	assert.Equal(t, 500.0, *slots[18].Price)

	// Free but unpriced: available yet not bookable.
	assert.True(t, slots[6].Available)
	assert.False(t, slots[6].Priced)
	assert.Nil(t, slots[6].Price)
}

func TestBuildAvailabilitySameDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.Local)
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	slots := buildAvailability(day, nil, map[int]float64{}, now)

	// Hours up to and including the current hour are excluded.
	assert.False(t, slots[13].Available)
	assert.False(t, slots[14].Available)
	assert.True(t, slots[15].Available)
}

func TestBuildAvailabilityPastDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.Local)
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)

	slots := buildAvailability(day, nil, map[int]float64{10: 500}, now)

	for _, slot := range slots {
		assert.False(t, slot.Available)
	}
	assert.True(t, slots[10].Priced)
}
