// Package handler provides the HTTP handlers for the game library API.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stevemurr/game-library/game"
	"github.com/stevemurr/game-library/store"
)

const maxBodyBytes = 1 << 20

// Handler holds the server dependencies and registers routes.
type Handler struct {
	store store.Store

	// mu serialises API operations so each read-validate-mutate-respond
	// sequence is atomic with respect to other requests.
	mu sync.Mutex

	mux     *http.ServeMux
	root    http.Handler
	logger  *slog.Logger
	origins []string
	reg     *prometheus.Registry
	metrics *metrics
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for access and mutation logs.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) { h.logger = l }
}

// WithAllowedOrigins sets the CORS origin allow-list. "*" allows any origin.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Handler) { h.origins = origins }
}

// WithRegistry sets the Prometheus registry request metrics are recorded in
// and served from.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(h *Handler) { h.reg = reg }
}

// New creates a Handler and wires up all routes.
func New(s store.Store, opts ...Option) *Handler {
	h := &Handler{
		store:   s,
		mux:     http.NewServeMux(),
		logger:  slog.New(slog.DiscardHandler),
		origins: []string{"*"},
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.reg == nil {
		h.reg = prometheus.NewRegistry()
	}
	h.metrics = newMetrics(h.reg)
	h.routes()
	h.root = h.requestID(h.instrument(h.accessLog(cors(h.mux, h.origins))))
	return h
}

// ServeHTTP makes Handler an http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.root.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.mux.HandleFunc("GET /health", h.health)
	h.mux.Handle("GET /metrics", promhttp.HandlerFor(h.reg, promhttp.HandlerOpts{}))

	h.mux.HandleFunc("GET /api/games", h.listGames)
	h.mux.HandleFunc("GET /api/games/filter", h.filterGames)
	h.mux.HandleFunc("GET /api/games/{id}", h.getGame)
	h.mux.HandleFunc("POST /api/games", h.createGame)
	h.mux.HandleFunc("PUT /api/games/{id}", h.replaceGame)
	h.mux.HandleFunc("DELETE /api/games/{id}", h.deleteGame)

	h.mux.HandleFunc("/", h.notFound)
}

var routeMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

// notFound answers requests no route matched: 405 when the path is routed
// for another method, 404 otherwise.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	var allowed []string
	for _, m := range routeMethods {
		if m == r.Method {
			continue
		}
		alt := r.Clone(r.Context())
		alt.Method = m
		if _, pattern := h.mux.Handler(alt); pattern != "" && pattern != "/" {
			allowed = append(allowed, m)
		}
	}
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	writeError(w, http.StatusNotFound, "Not found")
}

// ---------- helpers ----------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// fail maps an operation error to its status code and public message.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var (
		missing *game.MissingFieldError
		invalid *game.InvalidFieldError
	)
	switch {
	case errors.Is(err, game.ErrNotFound):
		writeError(w, http.StatusNotFound, "Game not found")
	case errors.Is(err, game.ErrMissingQueryParam):
		writeError(w, http.StatusBadRequest, `Query parameter "genre" is required`)
	case errors.Is(err, game.ErrInvalidBody):
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
	case errors.As(err, &missing):
		writeError(w, http.StatusBadRequest, "Missing field: "+missing.Field)
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, "Invalid field: "+invalid.Field)
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// readPayload decodes the request body into a key/value map. An empty body
// decodes to an empty map.
func readPayload(r *http.Request) (map[string]any, error) {
	defer r.Body.Close()
	payload := map[string]any{}
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&payload)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, game.ErrInvalidBody
	}
	if payload == nil {
		// a literal null body
		payload = map[string]any{}
	}
	return payload, nil
}

// ---------- status endpoints ----------

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
