package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"rental-backend/internal/domain"
)

var ErrInvalidDuration = errors.New("rental duration must be at least one day")

// TieredPrice returns the price of renting for days under a price list link.
// Days 1..14 read the matching tier; beyond that the day-14 tier is extended
// by price_extra_day for every further day.
func TieredPrice(link *domain.PriceListLink, days int) (decimal.Decimal, error) {
	if days < 1 {
		return decimal.Zero, ErrInvalidDuration
	}
	if len(link.DailyPrices) != domain.DailyPriceCount {
		return decimal.Zero, fmt.Errorf("price list link %d has %d daily prices, want %d", link.ID, len(link.DailyPrices), domain.DailyPriceCount)
	}
	if days <= domain.DailyPriceCount {
		return link.DailyPrices[days-1], nil
	}
	extra := decimal.NewFromInt(int64(days - domain.DailyPriceCount))
	return link.DailyPrices[domain.DailyPriceCount-1].Add(link.PriceExtraDay.Mul(extra)), nil
}

// LineTotal is price x days x (1 - discount/100).
func LineTotal(price decimal.Decimal, days int, discount domain.Percent) decimal.Decimal {
	if days < 1 {
		return decimal.Zero
	}
	factor := decimal.NewFromInt(1).Sub(discount.Fraction())
	return price.Mul(decimal.NewFromInt(int64(days))).Mul(factor)
}
