package intake

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rental-backend/internal/domain"
	"rental-backend/internal/pricing"
)

var ErrUnknownRow = errors.New("unknown rental item row")

// Row is one line of the items editor. ID is local to the editor and has
// nothing to do with catalog item ids.
type Row struct {
	ID   string
	Item domain.RentalItem
}

// Editor is the ordered list of rented items on the intake form. Revision
// grows with every mutation so callers can detect changes without
// comparing contents.
type Editor struct {
	rows     []*Row
	errs     map[string]*domain.ValidationError
	revision uint64
	today    func() domain.Date
}

// NewEditor returns an empty editor. today defaults to domain.Today.
func NewEditor(today func() domain.Date) *Editor {
	if today == nil {
		today = domain.Today
	}
	return &Editor{errs: make(map[string]*domain.ValidationError), today: today}
}

// EditorFrom loads submitted items as rows, keeping their totals.
func EditorFrom(items []domain.RentalItem) *Editor {
	e := NewEditor(nil)
	for _, it := range items {
		e.rows = append(e.rows, &Row{ID: uuid.NewString(), Item: it})
	}
	return e
}

// Add appends a blank row dated today and returns its id.
func (e *Editor) Add() string {
	today := e.today()
	row := &Row{
		ID: uuid.NewString(),
		Item: domain.RentalItem{
			StartDate: today,
			EndDate:   today,
			Price:     decimal.Zero,
			Discount:  domain.NewPercent(0),
			Total:     decimal.Zero,
		},
	}
	e.rows = append(e.rows, row)
	e.revision++
	return row.ID
}

func (e *Editor) Remove(id string) error {
	for i, r := range e.rows {
		if r.ID == id {
			e.rows = append(e.rows[:i], e.rows[i+1:]...)
			delete(e.errs, id)
			e.revision++
			return nil
		}
	}
	return ErrUnknownRow
}

func (e *Editor) SetItemNumber(id, itemNumber string) error {
	return e.update(id, func(it *domain.RentalItem) {
		it.ItemNumber = itemNumber
	})
}

// SetStartDate raises the end date when the new start passes it.
func (e *Editor) SetStartDate(id string, d domain.Date) error {
	return e.update(id, func(it *domain.RentalItem) {
		it.StartDate = d
		if !it.EndDate.IsZero() && d.After(it.EndDate) {
			it.EndDate = d
		}
	})
}

// SetEndDate stores the end as given. An inverted range shows up in
// Validate, it is never corrected here.
func (e *Editor) SetEndDate(id string, d domain.Date) error {
	return e.update(id, func(it *domain.RentalItem) {
		it.EndDate = d
	})
}

func (e *Editor) SetPrice(id string, price decimal.Decimal) error {
	return e.update(id, func(it *domain.RentalItem) {
		it.Price = price
	})
}

func (e *Editor) SetDiscount(id string, discount domain.Percent) error {
	return e.update(id, func(it *domain.RentalItem) {
		it.Discount = discount
	})
}

func (e *Editor) update(id string, fn func(*domain.RentalItem)) error {
	r := e.find(id)
	if r == nil {
		return ErrUnknownRow
	}
	fn(&r.Item)
	r.Item.Total = rowTotal(r.Item)
	e.revision++
	return nil
}

func rowTotal(it domain.RentalItem) decimal.Decimal {
	if it.StartDate.IsZero() || it.EndDate.IsZero() || it.EndDate.Before(it.StartDate) {
		return decimal.Zero
	}
	return pricing.LineTotal(it.Price, pricing.InclusiveDays(it.StartDate, it.EndDate), it.Discount)
}

func (e *Editor) find(id string) *Row {
	for _, r := range e.rows {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Validate checks every row independently and returns the combined error,
// nil when all rows are valid. Per-row errors stay available via Errors.
func (e *Editor) Validate() error {
	e.errs = make(map[string]*domain.ValidationError, len(e.rows))
	all := domain.NewValidationError()
	for i, r := range e.rows {
		verr := validateRow(r.Item)
		if !verr.HasErrors() {
			continue
		}
		e.errs[r.ID] = verr
		for field, msg := range verr.Fields {
			all.Add(rowField(i, field), msg)
		}
	}
	return all.OrNil()
}

func rowField(i int, field string) string {
	return fmt.Sprintf("rentalItems[%d].%s", i, field)
}

func validateRow(it domain.RentalItem) *domain.ValidationError {
	verr := domain.NewValidationError()
	if it.ItemNumber == "" {
		verr.Add("item_number", "item number is required")
	}
	if it.StartDate.IsZero() {
		verr.Add("startDate", "start date is required")
	}
	switch {
	case it.EndDate.IsZero():
		verr.Add("endDate", "end date is required")
	case !it.StartDate.IsZero() && it.EndDate.Before(it.StartDate):
		verr.Add("endDate", ErrEndBeforeStart.Error())
	}
	return verr
}

// Items returns a copy of the lines in editor order.
func (e *Editor) Items() []domain.RentalItem {
	out := make([]domain.RentalItem, len(e.rows))
	for i, r := range e.rows {
		out[i] = r.Item
	}
	return out
}

func (e *Editor) Rows() []Row {
	out := make([]Row, len(e.rows))
	for i, r := range e.rows {
		out[i] = *r
	}
	return out
}

// Errors returns the row errors found by the last Validate, keyed by row id.
func (e *Editor) Errors() map[string]*domain.ValidationError {
	return e.errs
}

func (e *Editor) Revision() uint64 { return e.revision }

func (e *Editor) Len() int { return len(e.rows) }
