package pricing

import "math"

const (
	SellMultiplier = 1.05
	CostMultiplier = 0.70
)

// Quote holds the derived prices. Both are nil when the MSRP is unknown.
type Quote struct {
	MSRP         *float64
	SellPrice    *float64
	CostEstimate *float64
}

// Calculate derives the resale price (rounded to cents) and the dealer cost
// estimate from the supplier MSRP.
func Calculate(msrp *float64) Quote {
	if msrp == nil {
		return Quote{}
	}
	p := *msrp
	sell := RoundCents(p * SellMultiplier)
	cost := p * CostMultiplier
	return Quote{MSRP: &p, SellPrice: &sell, CostEstimate: &cost}
}

// RoundCents rounds half away from zero to two decimals.
func RoundCents(v float64) float64 {
	return float64(ToMinorUnits(v)) / 100
}

// ToMinorUnits converts a decimal amount to integer cents.
func ToMinorUnits(v float64) int64 {
	return int64(math.Round(v * 100))
}
