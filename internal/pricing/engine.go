package pricing

import (
	"github.com/shopspring/decimal"

	"rental-backend/internal/domain"
)

var (
	// VATRate is applied to the subtotal of rentals and services.
	VATRate = decimal.RequireFromString("0.21")
	// Deposit is charged once per rental and refunded on return.
	Deposit = decimal.NewFromInt(25)

	BaggagePickupFee     = decimal.RequireFromString("29.95")
	BaggageDeliveryFee   = decimal.RequireFromString("29.95")
	TransportOutboundFee = decimal.RequireFromString("19.95")
	TransportReturnFee   = decimal.RequireFromString("19.95")
)

// ItemGroup aggregates the lines sharing an item number.
type ItemGroup struct {
	ItemNumber string          `json:"item_number"`
	Count      int             `json:"count"`
	Days       int             `json:"days"` // longest line of the group
	Total      decimal.Decimal `json:"total"`
}

type ServiceLine struct {
	Service domain.ServiceType `json:"service"`
	Label   string             `json:"label"`
	Total   decimal.Decimal    `json:"total"`
}

// Breakdown is the display price of an intake form. It is never stored.
type Breakdown struct {
	Days             int             `json:"days"`
	Items            []ItemGroup     `json:"items"`
	Services         []ServiceLine   `json:"services"`
	RentalSubtotal   decimal.Decimal `json:"rental_subtotal"`
	ServicesSubtotal decimal.Decimal `json:"services_subtotal"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	VAT              decimal.Decimal `json:"vat"`
	Deposit          decimal.Decimal `json:"deposit"`
	Total            decimal.Decimal `json:"total"`
}

// Calculate prices an intake form. Each line's Total is taken as submitted;
// the period only feeds the informational day count. Negative inputs are
// not rejected here.
func Calculate(items []domain.RentalItem, extras domain.ExtraServices, period domain.RentalPeriod) Breakdown {
	days := periodDays(period)
	b := Breakdown{
		Days:     days,
		Items:    groupItems(items, days),
		Services: serviceLines(extras),
		Deposit:  Deposit,
	}

	for _, g := range b.Items {
		b.RentalSubtotal = b.RentalSubtotal.Add(g.Total)
	}
	for _, s := range b.Services {
		b.ServicesSubtotal = b.ServicesSubtotal.Add(s.Total)
	}

	b.Subtotal = b.RentalSubtotal.Add(b.ServicesSubtotal)
	b.VAT = b.Subtotal.Mul(VATRate)
	b.Total = b.Subtotal.Add(b.VAT).Add(b.Deposit)
	return b
}

func periodDays(p domain.RentalPeriod) int {
	if p.NumberOfDays > 0 {
		return p.NumberOfDays
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return 0
	}
	return InclusiveDays(p.StartDate, p.EndDate)
}

// groupItems keeps groups in order of first appearance. Lines without
// their own dates count fallbackDays.
func groupItems(items []domain.RentalItem, fallbackDays int) []ItemGroup {
	groups := make([]ItemGroup, 0, len(items))
	index := make(map[string]int, len(items))
	for _, it := range items {
		days := lineDays(it, fallbackDays)
		if i, ok := index[it.ItemNumber]; ok {
			groups[i].Count++
			groups[i].Days = max(groups[i].Days, days)
			groups[i].Total = groups[i].Total.Add(it.Total)
			continue
		}
		index[it.ItemNumber] = len(groups)
		groups = append(groups, ItemGroup{
			ItemNumber: it.ItemNumber,
			Count:      1,
			Days:       days,
			Total:      it.Total,
		})
	}
	return groups
}

func lineDays(it domain.RentalItem, fallbackDays int) int {
	if !it.StartDate.IsZero() && !it.EndDate.IsZero() && !it.EndDate.Before(it.StartDate) {
		return InclusiveDays(it.StartDate, it.EndDate)
	}
	return max(1, fallbackDays)
}

func serviceLines(e domain.ExtraServices) []ServiceLine {
	var lines []ServiceLine
	if e.BaggageTransport && e.BaggagePickup {
		lines = append(lines, ServiceLine{Service: domain.ServicePickup, Label: "Baggage transport pickup", Total: BaggagePickupFee})
	}
	if e.BaggageTransport && e.BaggageDelivery {
		lines = append(lines, ServiceLine{Service: domain.ServiceDelivery, Label: "Baggage transport delivery", Total: BaggageDeliveryFee})
	}
	if e.TransportOutbound {
		lines = append(lines, ServiceLine{Service: domain.ServiceOutbound, Label: "Outbound transport", Total: TransportOutboundFee})
	}
	if e.TransportReturn {
		lines = append(lines, ServiceLine{Service: domain.ServiceReturn, Label: "Return transport", Total: TransportReturnFee})
	}
	return lines
}
