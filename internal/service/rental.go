package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rental-backend/internal/domain"
	"rental-backend/internal/intake"
	"rental-backend/internal/logger"
	"rental-backend/internal/metrics"
	"rental-backend/internal/pricing"
	"rental-backend/internal/repository"
)

const maxPageSize = 100

type rentalService struct {
	rentalRepo repository.RentalRepository
	emailSvc   EmailService
}

func NewRentalService(rentalRepo repository.RentalRepository, emailSvc EmailService) RentalService {
	return &rentalService{rentalRepo: rentalRepo, emailSvc: emailSvc}
}

// SubmitOrder validates the form and stores it as one new customer and one
// rental. Prices are stored as submitted. Nothing is written when
// validation fails, and a failed write leaves no rows behind.
func (s *rentalService) SubmitOrder(ctx context.Context, sub *domain.OrderSubmission) (*domain.Rental, error) {
	logger.EnterMethod("rentalService.SubmitOrder", "items", len(sub.RentalItems))

	if err := validateSubmission(sub); err != nil {
		metrics.OrderFailuresTotal.WithLabelValues("validation").Inc()
		return nil, err
	}

	rental := sub.Rental()
	customer := sub.Customer
	customer.LastName = strings.TrimSpace(customer.LastName)
	rental.Customer = &customer

	if err := s.rentalRepo.CreateOrder(ctx, rental); err != nil {
		stage := "unknown"
		var stageErr *repository.StageError
		if errors.As(err, &stageErr) {
			stage = stageErr.Stage
		}
		metrics.OrderFailuresTotal.WithLabelValues(stage).Inc()
		logger.ErrorContext(ctx, "order submission failed", "stage", stage, "error", err)
		return nil, err
	}

	metrics.OrdersSubmittedTotal.Inc()
	metrics.OrderItemsTotal.Add(float64(len(rental.Items)))
	logger.InfoContext(ctx, "order saved", "rentalID", rental.ID, "customerID", rental.CustomerID, "items", len(rental.Items))

	if s.emailSvc != nil && customer.Email != "" {
		breakdown := pricing.Calculate(rental.Items, sub.ExtraServices, sub.RentalPeriod)
		if err := s.emailSvc.SendOrderConfirmation(ctx, rental, &breakdown); err != nil {
			logger.WarnContext(ctx, "order confirmation not sent", "rentalID", rental.ID, "error", err)
		}
	}
	return rental, nil
}

func validateSubmission(sub *domain.OrderSubmission) error {
	v := domain.NewValidationError()
	if strings.TrimSpace(sub.Customer.LastName) == "" {
		v.Add("customer.last_name", "last name is required")
	}

	rp := sub.RentalPeriod
	if rp.StartDate.IsZero() {
		v.Add("rentalPeriod.startDate", "start date is required")
	}
	if rp.EndDate.IsZero() {
		v.Add("rentalPeriod.endDate", "end date is required")
	}
	if _, err := intake.PeriodFrom(rp); err != nil {
		v.Add("rentalPeriod.endDate", err.Error())
	}

	var rowErr *domain.ValidationError
	if err := intake.EditorFrom(sub.RentalItems).Validate(); errors.As(err, &rowErr) {
		for field, msg := range rowErr.Fields {
			v.Add(field, msg)
		}
	}
	return v.OrNil()
}

// Quote prices a form state without storing anything.
func (s *rentalService) Quote(ctx context.Context, sub *domain.OrderSubmission) (*pricing.Breakdown, error) {
	period, err := intake.PeriodFrom(sub.RentalPeriod)
	if err != nil {
		v := domain.NewValidationError()
		v.Add("rentalPeriod.endDate", err.Error())
		return nil, v
	}
	b := pricing.Calculate(sub.RentalItems, sub.ExtraServices, period.RentalPeriod())
	return &b, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int64) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("rental %d: %w", id, err)
	}
	return rental, nil
}

func (s *rentalService) ListRentals(ctx context.Context, page, pageSize int32) ([]domain.Rental, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = 20
	}
	return s.rentalRepo.List(ctx, page, pageSize)
}
