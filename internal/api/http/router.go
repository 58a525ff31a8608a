package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"

	"rental-backend/internal/security"
	"rental-backend/internal/service"
)

// Services bundles what the HTTP API serves.
type Services struct {
	Auth    service.AuthService
	Rentals service.RentalService
	Catalog service.CatalogService
	DB      Pinger
}

// RouterOptions carries session settings from configuration.
type RouterOptions struct {
	TokenManager security.TokenManager
	Cookie       CookieOptions
}

// NewRouter wires every handler behind the standard middleware chain.
// Route security is looked up per matched route template.
func NewRouter(svc Services, opts RouterOptions) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	auth := NewAuthenticator(opts.TokenManager, opts.Cookie.Name)
	r.Use(instrument, auth.Middleware)

	NewHealthHandler(svc.DB).Register(r)
	NewAuthHandler(svc.Auth, opts.Cookie).Register(r)
	NewRentalHandler(svc.Rentals).Register(r)
	NewCatalogHandler(svc.Catalog).Register(r)

	standard := alice.New(recoverPanic, requestID, logRequest, secureHeaders)
	return standard.Then(r)
}
