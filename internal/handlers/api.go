package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"retail-dashboard/internal/analytics"
	"retail-dashboard/internal/errors"
)

const cacheControl = "public, max-age=300"

type APIHandlers struct {
	analytics *analytics.Service
	logger    *slog.Logger
}

func NewAPIHandlers(svc *analytics.Service, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analytics: svc,
		logger:    logger,
	}
}

func (h *APIHandlers) HandleStateSales(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.StateSales(), map[string]string{
		"Cache-Control": cacheControl,
	})
}

func (h *APIHandlers) HandleMonthlyPromo(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.MonthlyPromo(), map[string]string{
		"Cache-Control": cacheControl,
	})
}

func (h *APIHandlers) HandleTreemap(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.TreemapNodes(), map[string]string{
		"Cache-Control": cacheControl,
	})
}

func (h *APIHandlers) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.KPIs(), map[string]string{
		"Cache-Control": cacheControl,
	})
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.analytics.Stats())
}
