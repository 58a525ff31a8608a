package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
)

// ServiceType is the service_type column of rental_services.
type ServiceType string

const (
	ServiceBaggage  ServiceType = "baggage"
	ServicePickup   ServiceType = "pickup"
	ServiceDelivery ServiceType = "delivery"
	ServiceOutbound ServiceType = "outbound"
	ServiceReturn   ServiceType = "return"
)

type Rental struct {
	ID            int64         `json:"id"`
	CustomerID    int64         `json:"customer_id"`
	Customer      *Customer     `json:"customer,omitempty"`
	StartDate     Date          `json:"start_date"`
	EndDate       Date          `json:"end_date"`
	Comments      string        `json:"comments,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Items         []RentalItem  `json:"items,omitempty"`
	Services      []ServiceType `json:"services,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// RentalItem is a line of a rental. ItemNumber is free text, not a
// reference into the item catalog.
type RentalItem struct {
	ID         int64           `json:"id,omitempty"`
	RentalID   int64           `json:"rental_id,omitempty"`
	ItemNumber string          `json:"item_number"`
	StartDate  Date            `json:"startDate"`
	EndDate    Date            `json:"endDate"`
	Price      decimal.Decimal `json:"price"`
	Discount   Percent         `json:"discount"`
	Total      decimal.Decimal `json:"total"`
}

// ExtraServices are the optional add-ons selected on the intake form.
type ExtraServices struct {
	BaggageTransport  bool `json:"baggage_transport"`
	BaggagePickup     bool `json:"baggage_pickup"`
	BaggageDelivery   bool `json:"baggage_delivery"`
	TransportOutbound bool `json:"transport_outbound"`
	TransportReturn   bool `json:"transport_return"`
}

// ServiceTypes lists the rental_services rows the selection produces.
// Pickup and delivery only count when baggage transport is selected.
func (e ExtraServices) ServiceTypes() []ServiceType {
	var out []ServiceType
	if e.BaggageTransport {
		out = append(out, ServiceBaggage)
		if e.BaggagePickup {
			out = append(out, ServicePickup)
		}
		if e.BaggageDelivery {
			out = append(out, ServiceDelivery)
		}
	}
	if e.TransportOutbound {
		out = append(out, ServiceOutbound)
	}
	if e.TransportReturn {
		out = append(out, ServiceReturn)
	}
	return out
}

type RentalPeriod struct {
	StartDate    Date `json:"startDate"`
	EndDate      Date `json:"endDate"`
	NumberOfDays int  `json:"numberOfDays,omitempty"`
}

// OrderSubmission is the assembled intake form posted on finalize.
type OrderSubmission struct {
	Customer      Customer      `json:"customer"`
	RentalPeriod  RentalPeriod  `json:"rentalPeriod"`
	RentalItems   []RentalItem  `json:"rentalItems"`
	ExtraServices ExtraServices `json:"extraServices"`
	Comments      string        `json:"comments"`
	PaymentMethod string        `json:"paymentMethod"`
}

// Rental builds the rental row the submission persists.
func (s *OrderSubmission) Rental() *Rental {
	return &Rental{
		StartDate:     s.RentalPeriod.StartDate,
		EndDate:       s.RentalPeriod.EndDate,
		Comments:      s.Comments,
		PaymentMethod: s.PaymentMethod,
		PaymentStatus: PaymentStatusPending,
		Items:         s.RentalItems,
		Services:      s.ExtraServices.ServiceTypes(),
	}
}
