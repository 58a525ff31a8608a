package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"rental-backend/internal/domain"
	"rental-backend/internal/pricing"
	"rental-backend/internal/security"
)

type AuthService interface {
	// Login checks the credentials and returns a signed session token.
	Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error)
	CurrentUser(ctx context.Context, session *security.Session) (*domain.User, error)
	CreateUser(ctx context.Context, email, password string) (*domain.User, error)
}

type RentalService interface {
	SubmitOrder(ctx context.Context, sub *domain.OrderSubmission) (*domain.Rental, error)
	Quote(ctx context.Context, sub *domain.OrderSubmission) (*pricing.Breakdown, error)
	GetRental(ctx context.Context, id int64) (*domain.Rental, error)
	ListRentals(ctx context.Context, page, pageSize int32) ([]domain.Rental, int32, error)
}

type CatalogService interface {
	ListItemTypes(ctx context.Context) ([]domain.ItemType, error)
	ListPriceCodes(ctx context.Context) ([]domain.PriceCode, error)
	ListPriceLists(ctx context.Context) ([]domain.PriceList, error)
	ListAccommodationTypes(ctx context.Context, activeOnly bool) ([]domain.AccommodationType, error)
	ListBoatTimes(ctx context.Context, activeOnly bool) ([]domain.BoatTime, error)
	ListBaggageTimes(ctx context.Context, activeOnly bool) ([]domain.BaggageTime, error)

	ListItems(ctx context.Context) ([]domain.Item, error)
	CreateItem(ctx context.Context, item *domain.Item) error
	UpdateItem(ctx context.Context, item *domain.Item) error
	ItemPrice(ctx context.Context, itemNumber string, start, end domain.Date) (*ItemPrice, error)

	ListPriceListLinks(ctx context.Context) ([]domain.PriceListLink, error)
	CreatePriceListLink(ctx context.Context, link *domain.PriceListLink) (*domain.PriceListLink, error)
	UpdatePriceListLink(ctx context.Context, link *domain.PriceListLink) (*domain.PriceListLink, error)
	DeletePriceListLink(ctx context.Context, id int64) error

	DeactivateExpiredPriceLists(ctx context.Context) (int64, error)
}

type EmailService interface {
	SendOrderConfirmation(ctx context.Context, rental *domain.Rental, breakdown *pricing.Breakdown) error
}

// ItemPrice is the tiered list price of one catalog item for a period.
type ItemPrice struct {
	ItemNumber    string          `json:"item_number"`
	PriceCode     string          `json:"price_code"`
	PriceListID   int64           `json:"price_list_id"`
	PriceListName string          `json:"price_list_name"`
	Days          int             `json:"days"`
	Price         decimal.Decimal `json:"price"`
}
