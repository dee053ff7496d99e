package booking

import (
	"math"

	"lankatrails/internal/catalog"
)

// ComputeProviderPrice prices a provider-based booking: children count at
// half the per-adult base rate. The currency multiplier converts the
// provider's source-currency rate to the local currency; it is applied here,
// once, and the result is stored on the booking for good.
func ComputeProviderPrice(baseRate float64, adults, children int, multiplier float64) (float64, error) {
	if err := validateHeadcount(adults, children); err != nil {
		return 0, err
	}
	if baseRate < 0 || multiplier <= 0 {
		return 0, ErrValidation
	}

	total := baseRate * (float64(adults) + 0.5*float64(children)) * multiplier
	return round2(total), nil
}

// ComputeProductPrice prices a curated product from its published tier table.
// Tier tables are already in local currency, so no multiplier applies. A
// headcount outside every tier means the product cannot be priced.
func ComputeProductPrice(p catalog.Product, adults, children int) (float64, error) {
	if err := validateHeadcount(adults, children); err != nil {
		return 0, err
	}

	headcount := adults + children
	tier, ok := p.TierFor(headcount)
	if !ok {
		return 0, ErrNoPricing
	}
	return round2(float64(headcount) * tier.UnitPrice), nil
}

func validateHeadcount(adults, children int) error {
	if adults < 1 || children < 0 {
		return ErrValidation
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
