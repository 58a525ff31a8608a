package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rental-backend/internal/domain"
	"rental-backend/internal/pricing"
	"rental-backend/internal/repository"
	"rental-backend/internal/service"
)

func validSubmission() *domain.OrderSubmission {
	start := domain.NewDate(2024, time.June, 1)
	end := domain.NewDate(2024, time.June, 3)
	return &domain.OrderSubmission{
		Customer:     domain.Customer{LastName: " Jansen ", FirstName: "Piet", Email: "piet@example.com"},
		RentalPeriod: domain.RentalPeriod{StartDate: start, EndDate: end, NumberOfDays: 3},
		RentalItems: []domain.RentalItem{
			{ItemNumber: "B-12", StartDate: start, EndDate: end, Price: decimal.NewFromInt(10), Total: decimal.NewFromInt(30)},
		},
		ExtraServices: domain.ExtraServices{BaggageTransport: true, BaggagePickup: true},
		PaymentMethod: "pin",
	}
}

func TestRentalService_SubmitOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRentalRepo)
		email := new(MockEmailService)
		svc := service.NewRentalService(repo, email)

		repo.On("CreateOrder", ctx, mock.MatchedBy(func(r *domain.Rental) bool {
			return r.PaymentStatus == domain.PaymentStatusPending &&
				r.Customer != nil && r.Customer.LastName == "Jansen" &&
				len(r.Items) == 1 &&
				assert.ObjectsAreEqual([]domain.ServiceType{domain.ServiceBaggage, domain.ServicePickup}, r.Services)
		})).Run(func(args mock.Arguments) {
			r := args.Get(1).(*domain.Rental)
			r.ID = 42
			r.CustomerID = 7
		}).Return(nil).Once()
		email.On("SendOrderConfirmation", ctx, mock.AnythingOfType("*domain.Rental"), mock.MatchedBy(func(b *pricing.Breakdown) bool {
			return b.Subtotal.Equal(decimal.RequireFromString("59.95"))
		})).Return(nil).Once()

		rental, err := svc.SubmitOrder(ctx, validSubmission())
		require.NoError(t, err)
		assert.Equal(t, int64(42), rental.ID)
		repo.AssertExpectations(t)
		email.AssertExpectations(t)
	})

	t.Run("ValidationFailsBeforeWrite", func(t *testing.T) {
		repo := new(MockRentalRepo)
		svc := service.NewRentalService(repo, nil)

		sub := validSubmission()
		sub.Customer.LastName = "  "
		sub.RentalItems[0].ItemNumber = ""
		sub.RentalPeriod.EndDate = domain.NewDate(2024, time.May, 1)

		_, err := svc.SubmitOrder(ctx, sub)
		var v *domain.ValidationError
		require.ErrorAs(t, err, &v)
		assert.Contains(t, v.Fields, "customer.last_name")
		assert.Contains(t, v.Fields, "rentalPeriod.endDate")
		assert.Contains(t, v.Fields, "rentalItems[0].item_number")
		repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("StageFailure", func(t *testing.T) {
		repo := new(MockRentalRepo)
		email := new(MockEmailService)
		svc := service.NewRentalService(repo, email)

		stageErr := &repository.StageError{Stage: repository.StageItems, Err: errors.New("duplicate key")}
		repo.On("CreateOrder", ctx, mock.Anything).Return(stageErr).Once()

		rental, err := svc.SubmitOrder(ctx, validSubmission())
		assert.Nil(t, rental)
		assert.ErrorIs(t, err, stageErr)
		assert.EqualError(t, err, "rental_items: duplicate key")
		email.AssertNotCalled(t, "SendOrderConfirmation", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EmailFailureDoesNotFailOrder", func(t *testing.T) {
		repo := new(MockRentalRepo)
		email := new(MockEmailService)
		svc := service.NewRentalService(repo, email)

		repo.On("CreateOrder", ctx, mock.Anything).Return(nil).Once()
		email.On("SendOrderConfirmation", ctx, mock.Anything, mock.Anything).Return(errors.New("sendgrid down")).Once()

		rental, err := svc.SubmitOrder(ctx, validSubmission())
		assert.NoError(t, err)
		assert.NotNil(t, rental)
		email.AssertExpectations(t)
	})

	t.Run("NoEmailAddress", func(t *testing.T) {
		repo := new(MockRentalRepo)
		email := new(MockEmailService)
		svc := service.NewRentalService(repo, email)

		sub := validSubmission()
		sub.Customer.Email = ""
		repo.On("CreateOrder", ctx, mock.Anything).Return(nil).Once()

		_, err := svc.SubmitOrder(ctx, sub)
		assert.NoError(t, err)
		email.AssertNotCalled(t, "SendOrderConfirmation", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRentalService_Quote(t *testing.T) {
	svc := service.NewRentalService(new(MockRentalRepo), nil)
	ctx := context.Background()

	t.Run("Breakdown", func(t *testing.T) {
		b, err := svc.Quote(ctx, validSubmission())
		require.NoError(t, err)
		assert.Equal(t, 3, b.Days)
		assert.True(t, b.VAT.Equal(decimal.RequireFromString("12.5895")), b.VAT.String())
		assert.True(t, b.Total.Equal(decimal.RequireFromString("97.5395")), b.Total.String())
	})

	t.Run("InvertedPeriod", func(t *testing.T) {
		sub := validSubmission()
		sub.RentalPeriod.StartDate = domain.NewDate(2024, time.June, 5)
		_, err := svc.Quote(ctx, sub)
		var v *domain.ValidationError
		assert.ErrorAs(t, err, &v)
	})
}

func TestRentalService_GetAndList(t *testing.T) {
	repo := new(MockRentalRepo)
	svc := service.NewRentalService(repo, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(9)).Return(nil, domain.ErrNotFound).Once()
	_, err := svc.GetRental(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	repo.On("List", ctx, int32(1), int32(20)).Return([]domain.Rental{{ID: 1}}, int32(1), nil).Once()
	rentals, count, err := svc.ListRentals(ctx, 0, 500)
	assert.NoError(t, err)
	assert.Len(t, rentals, 1)
	assert.Equal(t, int32(1), count)
	repo.AssertExpectations(t)
}
