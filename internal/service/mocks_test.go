package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rental-backend/internal/domain"
	"rental-backend/internal/pricing"
	"rental-backend/internal/security"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) CreateOrder(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}

// MockCatalogRepo
type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) ListItemTypes(ctx context.Context) ([]domain.ItemType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ItemType), args.Error(1)
}
func (m *MockCatalogRepo) ListPriceCodes(ctx context.Context) ([]domain.PriceCode, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PriceCode), args.Error(1)
}
func (m *MockCatalogRepo) ListAccommodationTypes(ctx context.Context, activeOnly bool) ([]domain.AccommodationType, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.AccommodationType), args.Error(1)
}
func (m *MockCatalogRepo) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockCatalogRepo) GetItemByNumber(ctx context.Context, itemNumber string) (*domain.Item, error) {
	args := m.Called(ctx, itemNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockCatalogRepo) CreateItem(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockCatalogRepo) UpdateItem(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockCatalogRepo) ItemConflict(ctx context.Context, itemNumber, frameNumber string, excludeID int64) (bool, error) {
	args := m.Called(ctx, itemNumber, frameNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockPriceListRepo
type MockPriceListRepo struct {
	mock.Mock
}

func (m *MockPriceListRepo) List(ctx context.Context) ([]domain.PriceList, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PriceList), args.Error(1)
}
func (m *MockPriceListRepo) DeactivateExpired(ctx context.Context, today domain.Date) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

// MockLinkRepo
type MockLinkRepo struct {
	mock.Mock
}

func (m *MockLinkRepo) List(ctx context.Context) ([]domain.PriceListLink, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PriceListLink), args.Error(1)
}
func (m *MockLinkRepo) GetByID(ctx context.Context, id int64) (*domain.PriceListLink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceListLink), args.Error(1)
}
func (m *MockLinkRepo) Create(ctx context.Context, link *domain.PriceListLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}
func (m *MockLinkRepo) Update(ctx context.Context, link *domain.PriceListLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}
func (m *MockLinkRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockLinkRepo) PairExists(ctx context.Context, priceCodeID, priceListID, excludeID int64) (bool, error) {
	args := m.Called(ctx, priceCodeID, priceListID, excludeID)
	return args.Bool(0), args.Error(1)
}
func (m *MockLinkRepo) FindActive(ctx context.Context, priceCodeID int64, day domain.Date) (*domain.PriceListLink, error) {
	args := m.Called(ctx, priceCodeID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceListLink), args.Error(1)
}

// MockScheduleRepo
type MockScheduleRepo struct {
	mock.Mock
}

func (m *MockScheduleRepo) ListBoatTimes(ctx context.Context, activeOnly bool) ([]domain.BoatTime, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.BoatTime), args.Error(1)
}
func (m *MockScheduleRepo) ListBaggageTimes(ctx context.Context, activeOnly bool) ([]domain.BaggageTime, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.BaggageTime), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOrderConfirmation(ctx context.Context, rental *domain.Rental, breakdown *pricing.Breakdown) error {
	args := m.Called(ctx, rental, breakdown)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateSessionToken(userID int64, email string) (string, time.Time, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenManager) ValidateToken(token string) (*security.SessionClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.SessionClaims), args.Error(1)
}
