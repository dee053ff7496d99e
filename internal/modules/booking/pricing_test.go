package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lankatrails/internal/catalog"
)

func TestComputeProviderPrice_ChildrenHalfRate(t *testing.T) {
	price, err := ComputeProviderPrice(100, 2, 1, 1)

	assert.NoError(t, err)
	assert.Equal(t, 250.0, price)
}

func TestComputeProviderPrice_AppliesMultiplier(t *testing.T) {
	price, err := ComputeProviderPrice(38, 2, 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, 95.0, price)

	price, err = ComputeProviderPrice(38, 2, 1, 300)
	assert.NoError(t, err)
	assert.Equal(t, 28500.0, price)
}

func TestComputeProviderPrice_Rounding(t *testing.T) {
	price, err := ComputeProviderPrice(33.33, 1, 1, 1)

	assert.NoError(t, err)
	assert.Equal(t, 50.0, price) // 33.33 * 1.5 = 49.995 rounds up
}

func TestComputeProviderPrice_InvalidHeadcount(t *testing.T) {
	_, err := ComputeProviderPrice(100, 0, 2, 1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ComputeProviderPrice(100, 2, -1, 1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestComputeProviderPrice_InvalidRateOrMultiplier(t *testing.T) {
	_, err := ComputeProviderPrice(-5, 2, 0, 1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ComputeProviderPrice(100, 2, 0, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestComputeProductPrice_TierMatch(t *testing.T) {
	safari, ok := catalog.Find("jeep-safari")
	assert.True(t, ok)

	// 2 adults + 1 child = 3 heads, first tier at 55 per head
	price, err := ComputeProductPrice(safari, 2, 1)
	assert.NoError(t, err)
	assert.Equal(t, 165.0, price)

	// 4 heads crosses into the 45 tier
	price, err = ComputeProductPrice(safari, 4, 0)
	assert.NoError(t, err)
	assert.Equal(t, 180.0, price)

	// top tier boundary
	price, err = ComputeProductPrice(safari, 10, 2)
	assert.NoError(t, err)
	assert.Equal(t, 456.0, price)
}

func TestComputeProductPrice_HeadcountOutsideTiers(t *testing.T) {
	safari, ok := catalog.Find("jeep-safari")
	assert.True(t, ok)

	_, err := ComputeProductPrice(safari, 13, 0)
	assert.ErrorIs(t, err, ErrNoPricing)
}

func TestComputeProductPrice_NoTierTable(t *testing.T) {
	spa, ok := catalog.Find("ayurveda-spa-day")
	assert.True(t, ok)
	assert.False(t, spa.HasTiers())

	_, err := ComputeProductPrice(spa, 2, 0)
	assert.ErrorIs(t, err, ErrNoPricing)
}
