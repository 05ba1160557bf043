package locationshandler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"attendflow/internal/domain/attendance"
	"attendflow/internal/transport/http/api"
	"attendflow/internal/transport/http/middleware"
	"attendflow/internal/transport/http/shared"
)

type Handler struct {
	Store *attendance.Store
}

func NewHandler(store *attendance.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/locations", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{locationID}", h.handleGet)
		r.Put("/{locationID}", h.handleUpdate)
		r.Delete("/{locationID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Locations(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	loc, ok := h.Store.GetLocation(chi.URLParam(r, "locationID"))
	if !ok {
		api.Fail(w, http.StatusNotFound, "location_not_found", "location not found", reqID)
		return
	}
	api.Success(w, loc, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var loc attendance.Location
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid location payload", reqID)
		return
	}
	loc.Type = strings.ToUpper(strings.TrimSpace(loc.Type))
	if rejected := h.validate(w, loc, reqID); rejected {
		return
	}

	created := h.Store.AddLocation(loc)
	api.Created(w, created, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var loc attendance.Location
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid location payload", reqID)
		return
	}
	loc.ID = chi.URLParam(r, "locationID")
	loc.Type = strings.ToUpper(strings.TrimSpace(loc.Type))
	if rejected := h.validate(w, loc, reqID); rejected {
		return
	}

	if !h.Store.UpdateLocation(loc) {
		api.Fail(w, http.StatusNotFound, "location_not_found", "location not found", reqID)
		return
	}
	api.Success(w, loc, reqID)
}

// handleDelete never cascades: employees and attendance records keep their
// location references for historical integrity.
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	if !h.Store.DeleteLocation(chi.URLParam(r, "locationID")) {
		api.Fail(w, http.StatusNotFound, "location_not_found", "location not found", reqID)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, reqID)
}

func (h *Handler) validate(w http.ResponseWriter, loc attendance.Location, reqID string) bool {
	v := shared.NewValidator()
	v.Required("name", loc.Name, "name is required")
	v.Required("qrCode", loc.QRCode, "qrCode is required")
	v.Enum("type", loc.Type, attendance.PremiseTypes, "type must be a known premise type")
	v.Positive("radius", loc.Radius, "radius must be positive")
	return v.Reject(w, reqID)
}
