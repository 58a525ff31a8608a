package http_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rental-backend/internal/domain"
	"rental-backend/internal/pricing"
	"rental-backend/internal/security"
	"rental-backend/internal/service"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", time.Time{}, args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Get(2).(time.Time), args.Error(3)
}
func (m *MockAuthService) CurrentUser(ctx context.Context, session *security.Session) (*domain.User, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) SubmitOrder(ctx context.Context, sub *domain.OrderSubmission) (*domain.Rental, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) Quote(ctx context.Context, sub *domain.OrderSubmission) (*pricing.Breakdown, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Breakdown), args.Error(1)
}
func (m *MockRentalService) GetRental(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ListRentals(ctx context.Context, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListItemTypes(ctx context.Context) ([]domain.ItemType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ItemType), args.Error(1)
}
func (m *MockCatalogService) ListPriceCodes(ctx context.Context) ([]domain.PriceCode, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PriceCode), args.Error(1)
}
func (m *MockCatalogService) ListPriceLists(ctx context.Context) ([]domain.PriceList, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PriceList), args.Error(1)
}
func (m *MockCatalogService) ListAccommodationTypes(ctx context.Context, activeOnly bool) ([]domain.AccommodationType, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.AccommodationType), args.Error(1)
}
func (m *MockCatalogService) ListBoatTimes(ctx context.Context, activeOnly bool) ([]domain.BoatTime, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.BoatTime), args.Error(1)
}
func (m *MockCatalogService) ListBaggageTimes(ctx context.Context, activeOnly bool) ([]domain.BaggageTime, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.BaggageTime), args.Error(1)
}
func (m *MockCatalogService) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockCatalogService) CreateItem(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockCatalogService) UpdateItem(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockCatalogService) ItemPrice(ctx context.Context, itemNumber string, start, end domain.Date) (*service.ItemPrice, error) {
	args := m.Called(ctx, itemNumber, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ItemPrice), args.Error(1)
}
func (m *MockCatalogService) ListPriceListLinks(ctx context.Context) ([]domain.PriceListLink, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PriceListLink), args.Error(1)
}
func (m *MockCatalogService) CreatePriceListLink(ctx context.Context, link *domain.PriceListLink) (*domain.PriceListLink, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceListLink), args.Error(1)
}
func (m *MockCatalogService) UpdatePriceListLink(ctx context.Context, link *domain.PriceListLink) (*domain.PriceListLink, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceListLink), args.Error(1)
}
func (m *MockCatalogService) DeletePriceListLink(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCatalogService) DeactivateExpiredPriceLists(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error { return p.err }
