package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rental-backend/internal/domain"
	"rental-backend/internal/service"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

func (h *CatalogHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/item-types", h.ListItemTypes).Methods(http.MethodGet)
	r.HandleFunc("/api/price-codes", h.ListPriceCodes).Methods(http.MethodGet)
	r.HandleFunc("/api/price-lists", h.ListPriceLists).Methods(http.MethodGet)
	r.HandleFunc("/api/accommodation-types", h.ListAccommodationTypes).Methods(http.MethodGet)
	r.HandleFunc("/api/boat-times", h.ListBoatTimes).Methods(http.MethodGet)
	r.HandleFunc("/api/baggage-times", h.ListBaggageTimes).Methods(http.MethodGet)

	r.HandleFunc("/api/items", h.ListItems).Methods(http.MethodGet)
	r.HandleFunc("/api/items", h.CreateItem).Methods(http.MethodPost)
	r.HandleFunc("/api/items/{id}", h.UpdateItem).Methods(http.MethodPut)
	r.HandleFunc("/api/items/{itemNumber}/price", h.ItemPrice).Methods(http.MethodGet)

	r.HandleFunc("/api/price-list-links", h.ListLinks).Methods(http.MethodGet)
	r.HandleFunc("/api/price-list-links", h.CreateLink).Methods(http.MethodPost)
	r.HandleFunc("/api/price-list-links/{id}", h.UpdateLink).Methods(http.MethodPut)
	r.HandleFunc("/api/price-list-links/{id}", h.DeleteLink).Methods(http.MethodDelete)
}

// respond writes a list or the error that prevented it.
func respond[T any](w http.ResponseWriter, r *http.Request, list []T, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	if list == nil {
		list = []T{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CatalogHandler) ListItemTypes(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalogSvc.ListItemTypes(r.Context())
	respond(w, r, list, err)
}

func (h *CatalogHandler) ListPriceCodes(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalogSvc.ListPriceCodes(r.Context())
	respond(w, r, list, err)
}

func (h *CatalogHandler) ListPriceLists(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalogSvc.ListPriceLists(r.Context())
	respond(w, r, list, err)
}

func (h *CatalogHandler) ListAccommodationTypes(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalogSvc.ListAccommodationTypes(r.Context(), queryBool(r, "active"))
	respond(w, r, list, err)
}

func (h *CatalogHandler) ListBoatTimes(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalogSvc.ListBoatTimes(r.Context(), queryBool(r, "active"))
	respond(w, r, list, err)
}

func (h *CatalogHandler) ListBaggageTimes(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalogSvc.ListBaggageTimes(r.Context(), queryBool(r, "active"))
	respond(w, r, list, err)
}

func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalogSvc.ListItems(r.Context())
	respond(w, r, list, err)
}

func (h *CatalogHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var item domain.Item
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, r, err)
		return
	}
	item.ID = 0
	if err := h.catalogSvc.CreateItem(r.Context(), &item); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *CatalogHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var item domain.Item
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, r, err)
		return
	}
	item.ID = id
	if err := h.catalogSvc.UpdateItem(r.Context(), &item); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *CatalogHandler) ItemPrice(w http.ResponseWriter, r *http.Request) {
	v := domain.NewValidationError()
	start, err := domain.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		v.Add("start", err.Error())
	}
	end, err := domain.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		v.Add("end", err.Error())
	}
	if err := v.OrNil(); err != nil {
		writeError(w, r, err)
		return
	}

	price, err := h.catalogSvc.ItemPrice(r.Context(), mux.Vars(r)["itemNumber"], start, end)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, price)
}

func (h *CatalogHandler) ListLinks(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalogSvc.ListPriceListLinks(r.Context())
	respond(w, r, list, err)
}

func (h *CatalogHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var link domain.PriceListLink
	if err := decodeJSON(r, &link); err != nil {
		writeError(w, r, err)
		return
	}
	link.ID = 0
	created, err := h.catalogSvc.CreatePriceListLink(r.Context(), &link)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var link domain.PriceListLink
	if err := decodeJSON(r, &link); err != nil {
		writeError(w, r, err)
		return
	}
	link.ID = id
	updated, err := h.catalogSvc.UpdatePriceListLink(r.Context(), &link)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CatalogHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.catalogSvc.DeletePriceListLink(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
