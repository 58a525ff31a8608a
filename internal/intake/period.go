// Package intake holds the stateful editors behind the rental intake form:
// the rental period and the list of rented items.
package intake

import (
	"errors"

	"rental-backend/internal/domain"
	"rental-backend/internal/pricing"
)

var ErrEndBeforeStart = errors.New("end date must be after start date")

// Period keeps start date, end date and number of days consistent.
// Each setter drives one field and derives the others.
type Period struct {
	start domain.Date
	end   domain.Date
	days  int
}

// NewPeriod starts a period on start lasting days (at least one).
func NewPeriod(start domain.Date, days int) *Period {
	p := &Period{start: start}
	p.SetNumberOfDays(days)
	return p
}

// PeriodFrom rebuilds a period from submitted form state. A missing day
// count is derived from the dates.
func PeriodFrom(rp domain.RentalPeriod) (*Period, error) {
	p := &Period{start: rp.StartDate, end: rp.EndDate, days: rp.NumberOfDays}
	if p.start.IsZero() || p.end.IsZero() {
		if p.days > 0 && !p.start.IsZero() {
			p.end = pricing.EndDateFor(p.start, p.days)
		}
		return p, nil
	}
	if p.end.Before(p.start) {
		return nil, ErrEndBeforeStart
	}
	p.days = pricing.InclusiveDays(p.start, p.end)
	return p, nil
}

func (p *Period) StartDate() domain.Date { return p.start }
func (p *Period) EndDate() domain.Date   { return p.end }
func (p *Period) NumberOfDays() int      { return p.days }

func (p *Period) RentalPeriod() domain.RentalPeriod {
	return domain.RentalPeriod{StartDate: p.start, EndDate: p.end, NumberOfDays: p.days}
}

// SetStartDate moves the start. An end date before the new start is pulled
// up to it (one day); otherwise the day count follows the dates. Without an
// end date the current day count is kept and the end is derived.
func (p *Period) SetStartDate(d domain.Date) {
	p.start = d
	switch {
	case d.IsZero():
	case p.end.IsZero():
		if p.days > 0 {
			p.end = pricing.EndDateFor(d, p.days)
		}
	case p.end.Before(d):
		p.end = d
		p.days = 1
	default:
		p.days = pricing.InclusiveDays(d, p.end)
	}
}

// SetEndDate rejects an end before the start and leaves the period as is.
func (p *Period) SetEndDate(d domain.Date) error {
	if !p.start.IsZero() && !d.IsZero() && d.Before(p.start) {
		return ErrEndBeforeStart
	}
	p.end = d
	if !p.start.IsZero() && !d.IsZero() {
		p.days = pricing.InclusiveDays(p.start, d)
	}
	return nil
}

// SetNumberOfDays clamps n to one and moves the end date.
func (p *Period) SetNumberOfDays(n int) {
	p.days = max(1, n)
	if !p.start.IsZero() {
		p.end = pricing.EndDateFor(p.start, p.days)
	}
}
