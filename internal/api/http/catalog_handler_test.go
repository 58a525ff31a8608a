package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rental-backend/internal/domain"
	"rental-backend/internal/service"
)

func TestReferenceLists(t *testing.T) {
	api := newTestAPI(nil)
	api.catalog.On("ListBoatTimes", mock.Anything, true).Return([]domain.BoatTime{{ID: 1, Time: "08:15", Type: domain.DirectionOutbound}}, nil).Once()
	api.catalog.On("ListBaggageTimes", mock.Anything, false).Return([]domain.BaggageTime(nil), nil).Once()
	api.catalog.On("ListPriceCodes", mock.Anything).Return([]domain.PriceCode{{ID: 1, Code: "A"}}, nil).Once()

	rec := api.do(t, http.MethodGet, "/api/boat-times?active=true", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"time":"08:15","type":"heen","service_type":"","active":false}]`, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/api/baggage-times", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/api/price-codes", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	api.catalog.AssertExpectations(t)
}

func TestCreatePriceListLink(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		api := newTestAPI(nil)
		api.catalog.On("CreatePriceListLink", mock.Anything, mock.MatchedBy(func(l *domain.PriceListLink) bool {
			return l.ID == 0 && len(l.DailyPrices) == 14 && l.PriceExtraDay.Equal(decimal.RequireFromString("2.5"))
		})).Return(&domain.PriceListLink{ID: 5, PriceCodeCode: "A"}, nil).Once()

		body := `{"price_code_id":1,"price_list_id":2,"active":true,
			"daily_prices":[1,2,3,4,5,6,7,8,9,10,11,12,13,14],"price_extra_day":2.5}`
		rec := api.do(t, http.MethodPost, "/api/price-list-links", body, false)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, float64(5), decodeBody(t, rec)["id"])
	})

	t.Run("Rejected", func(t *testing.T) {
		api := newTestAPI(nil)
		v := domain.NewValidationError()
		v.Add("daily_prices", "daily prices must contain 14 values")
		api.catalog.On("CreatePriceListLink", mock.Anything, mock.Anything).Return(nil, v).Once()

		rec := api.do(t, http.MethodPost, "/api/price-list-links", `{"daily_prices":[1]}`, false)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateAndDeletePriceListLink(t *testing.T) {
	api := newTestAPI(nil)
	api.catalog.On("UpdatePriceListLink", mock.Anything, mock.MatchedBy(func(l *domain.PriceListLink) bool {
		return l.ID == 9
	})).Return(&domain.PriceListLink{ID: 9}, nil).Once()
	api.catalog.On("DeletePriceListLink", mock.Anything, int64(9)).Return(nil).Once()
	api.catalog.On("DeletePriceListLink", mock.Anything, int64(10)).Return(domain.ErrNotFound).Once()

	rec := api.do(t, http.MethodPut, "/api/price-list-links/9", `{"id":1}`, false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodDelete, "/api/price-list-links/9", "", false)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodDelete, "/api/price-list-links/10", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	api.catalog.AssertExpectations(t)
}

func TestItems(t *testing.T) {
	api := newTestAPI(nil)
	api.catalog.On("CreateItem", mock.Anything, mock.MatchedBy(func(i *domain.Item) bool {
		return i.ItemNumber == "B-1"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Item).ID = 3
	}).Return(nil).Once()
	api.catalog.On("UpdateItem", mock.Anything, mock.MatchedBy(func(i *domain.Item) bool {
		return i.ID == 3 && i.Status == domain.ItemStatusMaintenance
	})).Return(nil).Once()

	rec := api.do(t, http.MethodPost, "/api/items", `{"item_number":"B-1","frame_number":"F-1","item_type_id":1,"price_code_id":1}`, false)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(3), decodeBody(t, rec)["id"])

	rec = api.do(t, http.MethodPut, "/api/items/3", `{"item_number":"B-1","status":"maintenance"}`, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	api.catalog.AssertExpectations(t)
}

func TestItemPrice(t *testing.T) {
	api := newTestAPI(nil)
	start := domain.NewDate(2024, time.July, 1)
	end := domain.NewDate(2024, time.July, 17)
	api.catalog.On("ItemPrice", mock.Anything, "B-1", start, end).
		Return(&service.ItemPrice{ItemNumber: "B-1", Days: 17, Price: decimal.RequireFromString("85.5")}, nil).Once()

	rec := api.do(t, http.MethodGet, "/api/items/B-1/price?start=2024-07-01&end=2024-07-17", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(17), body["days"])
	assert.Equal(t, 85.5, body["price"])

	rec = api.do(t, http.MethodGet, "/api/items/B-1/price?start=bogus", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	api.catalog.AssertExpectations(t)
}
