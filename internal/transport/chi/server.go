package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Pranav-Patel-123/WaY-scrapping/internal/domain"
	healthuc "github.com/Pranav-Patel-123/WaY-scrapping/internal/usecase/health"
	routeuc "github.com/Pranav-Patel-123/WaY-scrapping/internal/usecase/route"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the routing service over HTTP.
type Server struct {
	router        *routeuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(router *routeuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		router: router,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		upstreamHandler,
		sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, codeEmptyQuery),
		sentinelHandler(domain.ErrRoutingExhausted, http.StatusUnprocessableEntity, codeRoutingExhausted),
		sentinelHandler(domain.ErrProviderNotConfigured, http.StatusInternalServerError, codeProviderNotConfigured),
	}
	return s
}

// RegisterRoutes mounts all handlers on the given router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/", s.Root)
	r.Post("/search", s.Search)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Root handles GET /.
func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{
		Status:  "ok",
		Message: "query router is running",
	})
}

// Search handles POST /search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.router.Route(r.Context(), req.Query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResultToResponse(result))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func searchResultToResponse(result domain.SearchResult) searchResponse {
	resp := searchResponse{Source: string(result.Source)}
	if result.IsAnswer() {
		answer := result.Answer
		resp.Answer = &answer
		return resp
	}

	// An empty video list still serializes as [], not null.
	items := make([]videoResponse, len(result.Videos))
	for i, v := range result.Videos {
		items[i] = videoToResponse(v)
	}
	resp.Results = &items
	return resp
}

func videoToResponse(v domain.VideoRecord) videoResponse {
	return videoResponse{
		Title:       v.Title,
		Link:        v.Link,
		Description: v.Description,
		Channel:     v.Channel,
		Views:       v.Views,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrEmptyQuery,
		domain.ErrProviderNotConfigured,
		domain.ErrUpstream,
		domain.ErrRoutingExhausted,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// upstreamHandler handles ErrUpstream with the failed dependency name attached.
func upstreamHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrUpstream) {
		return false
	}
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Code:       codeUpstreamError,
			Message:    msg,
			Dependency: ue.Dependency,
		})
		return true
	}
	writeError(w, http.StatusBadGateway, codeUpstreamError, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
