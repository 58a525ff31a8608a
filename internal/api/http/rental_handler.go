package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rental-backend/internal/domain"
	"rental-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

func (h *RentalHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/rentals", h.Submit).Methods(http.MethodPost)
	r.HandleFunc("/api/rentals/quote", h.Quote).Methods(http.MethodPost)
	r.HandleFunc("/api/rentals", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/rentals/{id}", h.Get).Methods(http.MethodGet)
}

type submitResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// Submit stores the finalized intake form. Storage failures answer 500
// with the underlying message.
func (h *RentalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub domain.OrderSubmission
	if err := decodeJSON(r, &sub); err != nil {
		writeError(w, r, err)
		return
	}

	rental, err := h.rentalSvc.SubmitOrder(r.Context(), &sub)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{ID: rental.ID, Status: "saved"})
}

func (h *RentalHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var sub domain.OrderSubmission
	if err := decodeJSON(r, &sub); err != nil {
		writeError(w, r, err)
		return
	}
	breakdown, err := h.rentalSvc.Quote(r.Context(), &sub)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}

type listRentalsResponse struct {
	Rentals []domain.Rental `json:"rentals"`
	Total   int32           `json:"total"`
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, total, err := h.rentalSvc.ListRentals(r.Context(), queryInt32(r, "page"), queryInt32(r, "page_size"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, listRentalsResponse{Rentals: rentals, Total: total})
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	rental, err := h.rentalSvc.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}
