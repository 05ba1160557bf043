package employeeshandler

import (
	"encoding/json"
	"io"
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
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{employeeID}", h.handleGet)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Post("/{employeeID}/toggle-status", h.handleToggleStatus)
		r.Post("/import", h.handleImport)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Employees(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	emp, ok := h.Store.GetEmployee(chi.URLParam(r, "employeeID"))
	if !ok {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", reqID)
		return
	}
	api.Success(w, emp, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var emp attendance.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid employee payload", reqID)
		return
	}
	canonicalizeEnums(&emp)
	if rejected := h.validate(w, emp, reqID); rejected {
		return
	}

	created := h.Store.AddEmployee(emp)
	api.Created(w, created, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var emp attendance.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid employee payload", reqID)
		return
	}
	emp.ID = chi.URLParam(r, "employeeID")
	canonicalizeEnums(&emp)
	if rejected := h.validate(w, emp, reqID); rejected {
		return
	}

	if !h.Store.UpdateEmployee(emp) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", reqID)
		return
	}
	// The store fills role and status left out of the payload; echo its copy.
	updated, _ := h.Store.GetEmployee(emp.ID)
	api.Success(w, updated, reqID)
}

func (h *Handler) handleToggleStatus(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	emp, ok := h.Store.ToggleEmployeeStatus(chi.URLParam(r, "employeeID"))
	if !ok {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", reqID)
		return
	}
	api.Success(w, emp, reqID)
}

// handleImport accepts the raw CSV text as the request body. Malformed rows
// are skipped, matching the bulk-import contract.
func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "could not read import body", reqID)
		return
	}

	fallbackLocation := ""
	if locations := h.Store.Locations(); len(locations) > 0 {
		fallbackLocation = locations[0].ID
	}

	parsed := attendance.ParseEmployeeCSV(string(body), fallbackLocation)
	imported := h.Store.ImportEmployees(parsed)
	api.Created(w, map[string]any{"imported": len(imported), "employees": imported}, reqID)
}

// canonicalizeEnums upper-cases the role and status fields so payloads like
// "active" validate and land in the ledger as the canonical enum values its
// comparisons expect.
func canonicalizeEnums(emp *attendance.Employee) {
	emp.Role = strings.ToUpper(strings.TrimSpace(emp.Role))
	emp.Status = strings.ToUpper(strings.TrimSpace(emp.Status))
}

func (h *Handler) validate(w http.ResponseWriter, emp attendance.Employee, reqID string) bool {
	v := shared.NewValidator()
	v.Required("name", emp.Name, "name is required")
	v.Required("employeeId", emp.EmployeeID, "employeeId is required")
	v.Required("locationId", emp.LocationID, "locationId is required")
	v.Enum("role", emp.Role, []string{attendance.RoleAdmin, attendance.RoleEmployee}, "role must be ADMIN or EMPLOYEE")
	v.Enum("status", emp.Status, []string{attendance.StatusActive, attendance.StatusInactive}, "status must be ACTIVE or INACTIVE")
	v.NonNegative("baseSalary", emp.BaseSalary, "baseSalary must not be negative")
	v.NonNegative("hourlyRate", emp.HourlyRate, "hourlyRate must not be negative")
	v.NonNegative("penalty", emp.Penalty, "penalty must not be negative")
	v.NonNegative("loanRepayment", emp.LoanRepayment, "loanRepayment must not be negative")
	v.NonNegative("bonus", emp.Bonus, "bonus must not be negative")
	if emp.OTMultiplier != 0 && emp.OTMultiplier < 1 {
		v.Add("otMultiplier", "otMultiplier must be at least 1.0")
	}
	return v.Reject(w, reqID)
}
