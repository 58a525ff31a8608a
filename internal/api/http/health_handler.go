package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/health", h.Check).Methods(http.MethodGet)
}

type healthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusInternalServerError, healthResponse{
			Status:    "error",
			Database:  "disconnected",
			Error:     err.Error(),
			Timestamp: time.Now().UTC(),
		})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "connected", Timestamp: time.Now().UTC()})
}
