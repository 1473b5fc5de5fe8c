package server

import (
	"log/slog"
	"net/http"

	"retail-dashboard/internal/analytics"
	"retail-dashboard/internal/handlers"
)

type Server struct {
	analytics   *analytics.Service
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

// TemplateHandlers carries the page handlers wired up by the caller,
// which owns the dashboard builder.
type TemplateHandlers struct {
	Dashboard http.HandlerFunc
}

func NewServer(svc *analytics.Service, logger *slog.Logger, templateHandlers *TemplateHandlers) *Server {
	s := &Server{
		analytics:   svc,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(svc, logger),
		sseHandlers: handlers.NewSSEHandlers(svc, logger),
	}
	s.setupRoutes(templateHandlers)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	// Dashboard page
	s.mux.HandleFunc("GET /", templateHandlers.Dashboard)
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)

	// REST API endpoints, one per aggregate view
	s.mux.HandleFunc("GET /api/state-sales", s.apiHandlers.HandleStateSales)
	s.mux.HandleFunc("GET /api/monthly-promo", s.apiHandlers.HandleMonthlyPromo)
	s.mux.HandleFunc("GET /api/treemap", s.apiHandlers.HandleTreemap)
	s.mux.HandleFunc("GET /api/kpis", s.apiHandlers.HandleKPIs)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/kpis", s.sseHandlers.HandleKPIs)
	s.mux.HandleFunc("GET /sse/refresh-all", s.sseHandlers.HandleRefreshAll)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
