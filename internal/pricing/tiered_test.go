package pricing

import (
	"testing"

	"rental-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLink() *domain.PriceListLink {
	prices := make([]decimal.Decimal, domain.DailyPriceCount)
	for i := range prices {
		prices[i] = decimal.NewFromInt(int64(10 + 5*i))
	}
	return &domain.PriceListLink{ID: 7, DailyPrices: prices, PriceExtraDay: dec("3.50")}
}

func TestTieredPrice(t *testing.T) {
	link := testLink()

	t.Run("Within the daily tiers", func(t *testing.T) {
		p, err := TieredPrice(link, 1)
		require.NoError(t, err)
		assert.True(t, p.Equal(dec("10")))

		p, err = TieredPrice(link, 14)
		require.NoError(t, err)
		assert.True(t, p.Equal(dec("75")))
	})

	t.Run("Beyond fourteen days", func(t *testing.T) {
		p, err := TieredPrice(link, 17)
		require.NoError(t, err)
		assert.True(t, p.Equal(dec("85.50")))
	})

	t.Run("Zero days", func(t *testing.T) {
		_, err := TieredPrice(link, 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("Malformed link", func(t *testing.T) {
		bad := testLink()
		bad.DailyPrices = bad.DailyPrices[:13]
		_, err := TieredPrice(bad, 3)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "has 13 daily prices")
	})
}

func TestLineTotal(t *testing.T) {
	assert.True(t, LineTotal(dec("10"), 3, domain.NewPercent(0)).Equal(dec("30")))
	assert.True(t, LineTotal(dec("10"), 3, domain.NewPercent(10)).Equal(dec("27")))
	assert.True(t, LineTotal(dec("12.50"), 2, domain.NewPercent(100)).IsZero())
	assert.True(t, LineTotal(dec("10"), 0, domain.NewPercent(0)).IsZero())
}
