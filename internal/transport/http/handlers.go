// @title OIDC Discovery API
// @version 1.0.0
// @description OpenID Connect discovery metadata and JSON Web Key Set publisher

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0

// @host localhost:8000
// @BasePath /

package http

import (
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/opentrusty/oidc-discovery/internal/observability/metrics"
	"github.com/opentrusty/oidc-discovery/internal/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Documents supplies the encoded documents served by the handler.
type Documents interface {
	ConfigurationJSON() []byte
	JWKSetJSON() []byte
}

// Handler holds HTTP handlers and dependencies
type Handler struct {
	configurationJSON []byte
	keySetJSON        []byte
	serviceName       string
}

// NewHandler creates a new HTTP handler. The documents are copied once and
// served unchanged for the lifetime of the handler.
func NewHandler(docs Documents, serviceName string) *Handler {
	return &Handler{
		configurationJSON: slices.Clone(docs.ConfigurationJSON()),
		keySetJSON:        slices.Clone(docs.JWKSetJSON()),
		serviceName:       serviceName,
	}
}

// RouterConfig holds router options
type RouterConfig struct {
	// RequestTimeout bounds the handler chain; zero means 60s.
	RequestTimeout time.Duration
	Instruments    *metrics.Instruments
}

// NewRouter creates a new HTTP router
func NewRouter(h *Handler, cfg RouterConfig) *chi.Mux {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(func(handler http.Handler) http.Handler {
		return otelhttp.NewHandler(handler, "http_request",
			otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
				return r.Method
			}),
		)
	})
	r.Use(SpanNameMiddleware())
	r.Use(LoggingMiddleware())
	if cfg.Instruments != nil {
		r.Use(MetricsMiddleware(cfg.Instruments))
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(middleware.GetHead)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	// Health check
	r.Get("/health", h.HealthCheck)

	// OIDC Discovery Section 4
	r.Get(oidc.DiscoveryPath, h.Discovery)
	r.Get(oidc.JWKSPath, h.JWKS)

	return r
}

// HealthCheck returns the health status
// @Summary Health Check
// @Description Checks if the service is up and running
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": h.serviceName,
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// respondRaw writes an already encoded JSON document.
func respondRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
