package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"attendflow/internal/domain/attendance"
	"attendflow/internal/domain/geofence"
	"attendflow/internal/platform/metrics"
	"attendflow/internal/transport/http/api"
	"attendflow/internal/transport/http/middleware"
)

type Handler struct {
	Store   *attendance.Store
	Metrics *metrics.Collector
}

func NewHandler(store *attendance.Store, collector *metrics.Collector) *Handler {
	return &Handler{Store: store, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Post("/check-in", h.handleCheckIn)
		r.Post("/check-out", h.handleCheckOut)
		r.Get("/", h.handleList)
		r.Get("/today", h.handleToday)
	})
}

type checkInPayload struct {
	EmployeeID string  `json:"employeeId"`
	Token      string  `json:"token"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	PhotoURL   string  `json:"photoUrl"`
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload checkInPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid check-in payload", reqID)
		return
	}
	if payload.EmployeeID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "employeeId is required", reqID)
		return
	}

	coords := geofence.Coordinate{Latitude: payload.Latitude, Longitude: payload.Longitude}
	rec, err := h.Store.CheckIn(payload.EmployeeID, payload.Token, coords, payload.PhotoURL)
	if err != nil {
		h.Metrics.RecordCheckIn(false)
		status, code := checkInFailure(err)
		api.Fail(w, status, code, err.Error(), reqID)
		return
	}

	h.Metrics.RecordCheckIn(true)
	api.Created(w, rec, reqID)
}

// checkInFailure maps ledger rejections onto response codes. Every rejection
// leaves the ledger unchanged, so all of these are safe to retry.
func checkInFailure(err error) (int, string) {
	switch {
	case errors.Is(err, attendance.ErrEmployeeNotFound):
		return http.StatusNotFound, "employee_not_found"
	case errors.Is(err, attendance.ErrLocationNotFound):
		return http.StatusUnprocessableEntity, "no_assigned_location"
	case errors.Is(err, attendance.ErrTokenMismatch):
		return http.StatusUnprocessableEntity, "token_mismatch"
	case errors.Is(err, attendance.ErrOutsideGeofence):
		return http.StatusUnprocessableEntity, "outside_geofence"
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		return http.StatusConflict, "already_checked_in"
	default:
		return http.StatusInternalServerError, "check_in_failed"
	}
}

type checkOutPayload struct {
	EmployeeID string `json:"employeeId"`
}

func (h *Handler) handleCheckOut(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload checkOutPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.EmployeeID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "employeeId is required", reqID)
		return
	}

	rec, ok := h.Store.CheckOut(payload.EmployeeID)
	if !ok {
		// No open record today is a no-op, not a fault.
		api.Success(w, map[string]any{"checkedOut": false}, reqID)
		return
	}

	h.Metrics.RecordCheckOut()
	api.Success(w, map[string]any{"checkedOut": true, "record": rec}, reqID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	if employeeID := r.URL.Query().Get("employeeId"); employeeID != "" {
		api.Success(w, h.Store.History(employeeID), reqID)
		return
	}
	api.Success(w, h.Store.Records(), reqID)
}

func (h *Handler) handleToday(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "employeeId is required", reqID)
		return
	}

	rec, ok := h.Store.TodayRecord(employeeID)
	if !ok {
		api.Success(w, nil, reqID)
		return
	}
	api.Success(w, rec, reqID)
}
