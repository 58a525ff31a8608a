package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"rental-backend/internal/config"
	"rental-backend/internal/logger"
	"rental-backend/internal/metrics"
	"rental-backend/internal/security"
)

const requestIDHeader = "X-Request-ID"

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

// requestID tags the request context logger with the caller's X-Request-ID
// or a fresh uuid, and echoes it back.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := logger.WithRequest(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.InfoContext(r.Context(), "HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}

func recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				logger.ErrorContext(r.Context(), "Panic while serving request", "path", r.URL.Path, "panic", fmt.Sprint(err))
				writeMessage(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// routeKey is "METHOD /path/template" of the matched mux route.
func routeKey(r *http.Request) string {
	tpl := r.URL.Path
	if route := mux.CurrentRoute(r); route != nil {
		if t, err := route.GetPathTemplate(); err == nil {
			tpl = t
		}
	}
	return r.Method + " " + tpl
}

// instrument records request latency by route template. It runs as a mux
// middleware so the route is already matched.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		route := strings.TrimPrefix(routeKey(r), r.Method+" ")
		metrics.HTTPRequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

// Authenticator resolves the session of a request from the session cookie
// or an Authorization: Bearer header.
type Authenticator struct {
	tokenManager security.TokenManager
	cookieName   string
}

func NewAuthenticator(tm security.TokenManager, cookieName string) *Authenticator {
	return &Authenticator{tokenManager: tm, cookieName: cookieName}
}

func (a *Authenticator) extractToken(r *http.Request) string {
	if c, err := r.Cookie(a.cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	token := r.Header.Get("Authorization")
	if len(token) > 7 && strings.ToUpper(token[0:7]) == "BEARER " {
		return token[7:]
	}
	return ""
}

// Middleware rejects requests to session routes without a valid token and
// puts the session into the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if config.GetSecurityLevel(routeKey(r)) == config.SecurityPublic {
			next.ServeHTTP(w, r)
			return
		}

		token := a.extractToken(r)
		if token == "" {
			writeMessage(w, http.StatusUnauthorized, "authentication required")
			return
		}
		claims, err := a.tokenManager.ValidateToken(token)
		if err != nil {
			logger.DebugContext(r.Context(), "Token rejected", "error", err)
			writeMessage(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		session := security.NewSession(claims)
		ctx := logger.WithRequest(security.WithSession(r.Context(), session), w.Header().Get(requestIDHeader), "user_id", session.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
