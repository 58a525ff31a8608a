package service

import (
	"context"
	"errors"
	"fmt"

	"rental-backend/internal/domain"
	"rental-backend/internal/logger"
	"rental-backend/internal/metrics"
	"rental-backend/internal/pricing"
	"rental-backend/internal/repository"
)

type catalogService struct {
	catalogRepo   repository.CatalogRepository
	priceListRepo repository.PriceListRepository
	linkRepo      repository.PriceListLinkRepository
	scheduleRepo  repository.ScheduleRepository
	today         func() domain.Date
}

func NewCatalogService(
	catalogRepo repository.CatalogRepository,
	priceListRepo repository.PriceListRepository,
	linkRepo repository.PriceListLinkRepository,
	scheduleRepo repository.ScheduleRepository,
) CatalogService {
	return &catalogService{
		catalogRepo:   catalogRepo,
		priceListRepo: priceListRepo,
		linkRepo:      linkRepo,
		scheduleRepo:  scheduleRepo,
		today:         domain.Today,
	}
}

func (s *catalogService) ListItemTypes(ctx context.Context) ([]domain.ItemType, error) {
	return s.catalogRepo.ListItemTypes(ctx)
}

func (s *catalogService) ListPriceCodes(ctx context.Context) ([]domain.PriceCode, error) {
	return s.catalogRepo.ListPriceCodes(ctx)
}

func (s *catalogService) ListPriceLists(ctx context.Context) ([]domain.PriceList, error) {
	return s.priceListRepo.List(ctx)
}

func (s *catalogService) ListAccommodationTypes(ctx context.Context, activeOnly bool) ([]domain.AccommodationType, error) {
	return s.catalogRepo.ListAccommodationTypes(ctx, activeOnly)
}

func (s *catalogService) ListBoatTimes(ctx context.Context, activeOnly bool) ([]domain.BoatTime, error) {
	return s.scheduleRepo.ListBoatTimes(ctx, activeOnly)
}

func (s *catalogService) ListBaggageTimes(ctx context.Context, activeOnly bool) ([]domain.BaggageTime, error) {
	return s.scheduleRepo.ListBaggageTimes(ctx, activeOnly)
}

func (s *catalogService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.catalogRepo.ListItems(ctx)
}

func (s *catalogService) CreateItem(ctx context.Context, item *domain.Item) error {
	if err := s.checkItem(ctx, item); err != nil {
		return err
	}
	return s.catalogRepo.CreateItem(ctx, item)
}

func (s *catalogService) UpdateItem(ctx context.Context, item *domain.Item) error {
	if item.ID <= 0 {
		return domain.ErrNotFound
	}
	if err := s.checkItem(ctx, item); err != nil {
		return err
	}
	return s.catalogRepo.UpdateItem(ctx, item)
}

func (s *catalogService) checkItem(ctx context.Context, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	conflict, err := s.catalogRepo.ItemConflict(ctx, item.ItemNumber, item.FrameNumber, item.ID)
	if err != nil {
		return err
	}
	if conflict {
		v := domain.NewValidationError()
		v.Add("item_number", "item number or frame number already exists")
		return v
	}
	return nil
}

// ItemPrice looks up the tiered list price of an item for start..end.
func (s *catalogService) ItemPrice(ctx context.Context, itemNumber string, start, end domain.Date) (*ItemPrice, error) {
	if start.IsZero() || end.IsZero() {
		v := domain.NewValidationError()
		v.Add("start", "start and end dates are required")
		return nil, v
	}
	if end.Before(start) {
		v := domain.NewValidationError()
		v.Add("end", "end date must be after start date")
		return nil, v
	}

	item, err := s.catalogRepo.GetItemByNumber(ctx, itemNumber)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", itemNumber, err)
	}
	link, err := s.linkRepo.FindActive(ctx, item.PriceCodeID, start)
	if err != nil {
		return nil, fmt.Errorf("no active price for item %s on %s: %w", itemNumber, start, err)
	}

	days := pricing.InclusiveDays(start, end)
	price, err := pricing.TieredPrice(link, days)
	if err != nil {
		return nil, err
	}
	return &ItemPrice{
		ItemNumber:    item.ItemNumber,
		PriceCode:     link.PriceCodeCode,
		PriceListID:   link.PriceListID,
		PriceListName: link.PriceListName,
		Days:          days,
		Price:         price,
	}, nil
}

func (s *catalogService) ListPriceListLinks(ctx context.Context) ([]domain.PriceListLink, error) {
	return s.linkRepo.List(ctx)
}

func (s *catalogService) CreatePriceListLink(ctx context.Context, link *domain.PriceListLink) (*domain.PriceListLink, error) {
	if err := s.checkLink(ctx, link); err != nil {
		return nil, err
	}
	if err := s.linkRepo.Create(ctx, link); err != nil {
		return nil, err
	}
	return s.linkRepo.GetByID(ctx, link.ID)
}

func (s *catalogService) UpdatePriceListLink(ctx context.Context, link *domain.PriceListLink) (*domain.PriceListLink, error) {
	if link.ID <= 0 {
		return nil, domain.ErrNotFound
	}
	if err := s.checkLink(ctx, link); err != nil {
		return nil, err
	}
	if err := s.linkRepo.Update(ctx, link); err != nil {
		return nil, err
	}
	return s.linkRepo.GetByID(ctx, link.ID)
}

// checkLink runs before any write: fourteen prices and one link per pair.
func (s *catalogService) checkLink(ctx context.Context, link *domain.PriceListLink) error {
	if err := link.Validate(); err != nil {
		return err
	}
	exists, err := s.linkRepo.PairExists(ctx, link.PriceCodeID, link.PriceListID, link.ID)
	if err != nil {
		return err
	}
	if exists {
		v := domain.NewValidationError()
		v.Add("price_code_id", "a link between this price code and price list already exists")
		return v
	}
	return nil
}

func (s *catalogService) DeletePriceListLink(ctx context.Context, id int64) error {
	return s.linkRepo.Delete(ctx, id)
}

func (s *catalogService) DeactivateExpiredPriceLists(ctx context.Context) (int64, error) {
	today := s.today()
	n, err := s.priceListRepo.DeactivateExpired(ctx, today)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("deactivate_expired_price_lists").Inc()
		return 0, err
	}
	metrics.PriceListsDeactivatedTotal.Add(float64(n))
	if n > 0 {
		logger.Info("Deactivated expired price lists", "count", n, "today", today.String())
	}
	return n, nil
}

// IsValidation reports whether err should be shown to the user as a form error.
func IsValidation(err error) bool {
	var v *domain.ValidationError
	return errors.As(err, &v)
}
