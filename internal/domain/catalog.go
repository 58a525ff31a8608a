package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyPriceCount is the number of per-day tiers in a price list link.
const DailyPriceCount = 14

type ItemStatus string

const (
	ItemStatusAvailable   ItemStatus = "available"
	ItemStatusMaintenance ItemStatus = "maintenance"
	ItemStatusDefect      ItemStatus = "defect"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusAvailable, ItemStatusMaintenance, ItemStatusDefect:
		return true
	}
	return false
}

type ItemType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type AccommodationType struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type PriceCode struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Label string `json:"label"`
}

type PriceList struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ValidFrom   Date   `json:"valid_from"`
	ValidUntil  Date   `json:"valid_until"`
	Active      bool   `json:"active"`
}

// ValidOn reports whether the list is active and d falls within its
// validity window. An unset bound is open.
func (p PriceList) ValidOn(d Date) bool {
	if !p.Active {
		return false
	}
	if !p.ValidFrom.IsZero() && d.Before(p.ValidFrom) {
		return false
	}
	if !p.ValidUntil.IsZero() && d.After(p.ValidUntil) {
		return false
	}
	return true
}

// PriceListLink is the tiered schedule of one price code within one price list.
type PriceListLink struct {
	ID            int64             `json:"id"`
	PriceListID   int64             `json:"price_list_id"`
	PriceCodeID   int64             `json:"price_code_id"`
	Active        bool              `json:"active"`
	DailyPrices   []decimal.Decimal `json:"daily_prices"`
	PriceExtraDay decimal.Decimal   `json:"price_extra_day"`

	PriceCodeCode       string `json:"price_code_code,omitempty"`
	PriceCodeName       string `json:"price_code_name,omitempty"`
	PriceListName       string `json:"price_list_name,omitempty"`
	PriceListValidFrom  Date   `json:"price_list_valid_from,omitempty"`
	PriceListValidUntil Date   `json:"price_list_valid_until,omitempty"`
}

// Validate enforces the fixed tier count and non-negative prices.
func (l *PriceListLink) Validate() error {
	v := NewValidationError()
	if l.PriceCodeID <= 0 {
		v.Add("price_code_id", "price code is required")
	}
	if l.PriceListID <= 0 {
		v.Add("price_list_id", "price list is required")
	}
	if len(l.DailyPrices) != DailyPriceCount {
		v.Add("daily_prices", "daily prices must contain 14 values")
	}
	for _, p := range l.DailyPrices {
		if p.IsNegative() {
			v.Add("daily_prices", "daily prices must not be negative")
			break
		}
	}
	if l.PriceExtraDay.IsNegative() {
		v.Add("price_extra_day", "valid price required")
	}
	return v.OrNil()
}

// Item is a physical rentable asset in the inventory.
type Item struct {
	ID           int64      `json:"id"`
	ItemNumber   string     `json:"item_number"`
	Brand        string     `json:"brand"`
	ModelType    string     `json:"model_type"`
	Gender       string     `json:"gender"`
	BrakeType    string     `json:"brake_type"`
	FrameHeight  string     `json:"frame_height"`
	WheelSize    string     `json:"wheel_size"`
	Color        string     `json:"color"`
	Year         int        `json:"year"`
	LicensePlate string     `json:"license_plate"`
	LockType     string     `json:"lock_type"`
	FrameNumber  string     `json:"frame_number"`
	KeyNumber    string     `json:"key_number"`
	LockNumber   string     `json:"lock_number"`
	Status       ItemStatus `json:"status"`
	ItemTypeID   int64      `json:"item_type_id"`
	PriceCodeID  int64      `json:"price_code_id"`

	ItemType  *ItemType  `json:"item_type,omitempty"`
	PriceCode *PriceCode `json:"price_code,omitempty"`
}

func (it *Item) Validate() error {
	v := NewValidationError()
	if it.ItemNumber == "" {
		v.Add("item_number", "item number is required")
	}
	if it.FrameNumber == "" {
		v.Add("frame_number", "frame number is required")
	}
	if it.Status == "" {
		it.Status = ItemStatusAvailable
	}
	if !it.Status.Valid() {
		v.Add("status", "status must be one of: available, maintenance, defect")
	}
	if it.ItemTypeID <= 0 {
		v.Add("item_type_id", "item type is required")
	}
	if it.PriceCodeID <= 0 {
		v.Add("price_code_id", "price code is required")
	}
	return v.OrNil()
}
