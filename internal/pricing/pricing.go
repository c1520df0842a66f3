package pricing

// Payment options a customer can pick at booking time.
const (
	PaymentAdvance = "advance"
	PaymentFull    = "full"
)

const (
	advanceRate     = 0.30
	fullPaymentRate = 0.90
)

// Quote is the amount breakdown for a set of selected hours.
//
// On the advance path Total stays at full price and Advance is 30% of
// it. On the full-payment path the 10% discount is applied to Total
// itself and Advance carries that same discounted figure; the caller
// pays everything up front. The asymmetry is intentional and callers
// rely on it.
type Quote struct {
	Total   float64
	Advance float64
}

// Calculate sums the per-hour prices for the selected hours and applies
// the payment-type rule. Hours with no price entry contribute 0.
func Calculate(hours []int, prices map[int]float64, paymentType string) Quote {
	var total float64
	for _, h := range hours {
		total += prices[h]
	}

	if paymentType == PaymentFull {
		discounted := total * fullPaymentRate
		return Quote{Total: discounted, Advance: discounted}
	}

	return Quote{Total: total, Advance: total * advanceRate}
}

// Total returns the undiscounted sum of per-hour prices for the
// selected hours. Missing hours contribute 0.
func Total(hours []int, prices map[int]float64) float64 {
	var total float64
	for _, h := range hours {
		total += prices[h]
	}
	return total
}
