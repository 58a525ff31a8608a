package repository

import (
	"context"
	"fmt"

	"rental-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type RentalRepository interface {
	// CreateOrder writes rental.Customer, the rental, its items and its
	// services in one transaction. On success rental.ID, rental.CustomerID
	// and the customer and item ids are set.
	CreateOrder(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Rental, int32, error)
}

type CatalogRepository interface {
	ListItemTypes(ctx context.Context) ([]domain.ItemType, error)
	ListPriceCodes(ctx context.Context) ([]domain.PriceCode, error)
	ListAccommodationTypes(ctx context.Context, activeOnly bool) ([]domain.AccommodationType, error)

	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItemByNumber(ctx context.Context, itemNumber string) (*domain.Item, error)
	CreateItem(ctx context.Context, item *domain.Item) error
	UpdateItem(ctx context.Context, item *domain.Item) error
	// ItemConflict reports whether another item (not excludeID) already
	// uses itemNumber or frameNumber.
	ItemConflict(ctx context.Context, itemNumber, frameNumber string, excludeID int64) (bool, error)
}

type PriceListRepository interface {
	List(ctx context.Context) ([]domain.PriceList, error)
	// DeactivateExpired switches off active lists whose validity ended
	// before today and returns how many changed.
	DeactivateExpired(ctx context.Context, today domain.Date) (int64, error)
}

type PriceListLinkRepository interface {
	List(ctx context.Context) ([]domain.PriceListLink, error)
	GetByID(ctx context.Context, id int64) (*domain.PriceListLink, error)
	Create(ctx context.Context, link *domain.PriceListLink) error
	Update(ctx context.Context, link *domain.PriceListLink) error
	Delete(ctx context.Context, id int64) error
	// PairExists reports whether a link for the pair exists besides excludeID.
	PairExists(ctx context.Context, priceCodeID, priceListID, excludeID int64) (bool, error)
	// FindActive returns the active link of an active price list valid on day.
	FindActive(ctx context.Context, priceCodeID int64, day domain.Date) (*domain.PriceListLink, error)
}

type ScheduleRepository interface {
	ListBoatTimes(ctx context.Context, activeOnly bool) ([]domain.BoatTime, error)
	ListBaggageTimes(ctx context.Context, activeOnly bool) ([]domain.BaggageTime, error)
}

// Order write stages, in execution order.
const (
	StageBegin    = "begin"
	StageCustomer = "customer"
	StageRental   = "rental"
	StageItems    = "rental_items"
	StageServices = "rental_services"
	StageCommit   = "commit"
)

// StageError tells which step of an order write failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
