package reportshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"attendflow/internal/domain/attendance"
	"attendflow/internal/domain/reports"
	"attendflow/internal/transport/http/api"
	"attendflow/internal/transport/http/middleware"
)

type Handler struct {
	Store *attendance.Store
}

func NewHandler(store *attendance.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/locations", h.handleLocationAnalytics)
		r.Get("/employees/{employeeID}", h.handleEmployeeStats)
	})
}

func (h *Handler) handleLocationAnalytics(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	analytics := reports.ByLocation(h.Store.Locations(), h.Store.Records())
	api.Success(w, analytics, reqID)
}

func (h *Handler) handleEmployeeStats(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	employeeID := chi.URLParam(r, "employeeID")
	if _, ok := h.Store.GetEmployee(employeeID); !ok {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", reqID)
		return
	}
	stats := reports.ForEmployee(h.Store.History(employeeID))
	api.Success(w, stats, reqID)
}
