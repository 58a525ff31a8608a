package pricing

import (
	"math"

	"rental-backend/internal/domain"
)

const hoursPerDay = 24

// InclusiveDays counts both the start and the end day:
// ceil((end - start) / 24h) + 1, so a same-day rental is one day.
// An inverted range yields a value below one; callers validate ranges.
func InclusiveDays(start, end domain.Date) int {
	return int(math.Ceil(end.Sub(start).Hours()/hoursPerDay)) + 1
}

// EndDateFor is the inverse of InclusiveDays for days >= 1.
func EndDateFor(start domain.Date, days int) domain.Date {
	return start.AddDays(days - 1)
}
