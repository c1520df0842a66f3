package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAdvance(t *testing.T) {
	prices := map[int]float64{18: 500}

	q := Calculate([]int{18}, prices, PaymentAdvance)

	assert.Equal(t, 500.0, q.Total)
	assert.InDelta(t, 150.0, q.Advance, 1e-9)
}

func TestCalculateFull(t *testing.T) {
	prices := map[int]float64{18: 500}

	q := Calculate([]int{18}, prices, PaymentFull)

	assert.Equal(t, 450.0, q.Total)
	assert.Equal(t, 450.0, q.Advance)
}

func TestCalculateSumsSelectedHours(t *testing.T) {
	prices := map[int]float64{6: 300, 7: 300, 18: 500, 19: 600}

	q := Calculate([]int{18, 19}, prices, PaymentAdvance)

	assert.Equal(t, 1100.0, q.Total)
	assert.InDelta(t, 330.0, q.Advance, 1e-9)
}

func TestCalculateMissingHoursContributeZero(t *testing.T) {
	prices := map[int]float64{18: 500}

	q := Calculate([]int{17, 18, 19}, prices, PaymentAdvance)

	assert.Equal(t, 500.0, q.Total)
}

func TestCalculateEmptySelection(t *testing.T) {
	q := Calculate(nil, map[int]float64{18: 500}, PaymentAdvance)

	assert.Equal(t, 0.0, q.Total)
	assert.Equal(t, 0.0, q.Advance)
}

func TestTotal(t *testing.T) {
	prices := map[int]float64{6: 300, 18: 500}

	assert.Equal(t, 800.0, Total([]int{6, 18}, prices))
	assert.Equal(t, 0.0, Total([]int{0, 1, 2}, prices))
}
