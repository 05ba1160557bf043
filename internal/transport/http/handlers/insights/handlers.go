package insightshandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"attendflow/internal/domain/attendance"
	"attendflow/internal/domain/insights"
	"attendflow/internal/transport/http/api"
	"attendflow/internal/transport/http/middleware"
)

type Handler struct {
	Store      *attendance.Store
	Summarizer insights.Summarizer
}

func NewHandler(store *attendance.Store, summarizer insights.Summarizer) *Handler {
	return &Handler{Store: store, Summarizer: summarizer}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/insights", h.handleInsights)
}

// handleInsights is strictly best-effort: when the summarizer cannot produce
// a report the dashboard gets an explicit "unavailable" answer and carries on.
func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	report, err := h.Summarizer.Summarize(r.Context(), h.Store.Records())
	if err != nil {
		if errors.Is(err, insights.ErrUnavailable) {
			api.Fail(w, http.StatusServiceUnavailable, "insights_unavailable", "no insights available", reqID)
			return
		}
		api.Fail(w, http.StatusBadGateway, "insights_failed", "insight generation failed", reqID)
		return
	}
	api.Success(w, report, reqID)
}
