package payrollhandler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"attendflow/internal/domain/attendance"
	"attendflow/internal/domain/payroll"
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
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/", h.handleRegister)
		r.Get("/export", h.handleExportCSV)
		r.Get("/{employeeID}", h.handleReport)
		r.Get("/{employeeID}/payslip", h.handlePayslipPDF)
	})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	reports := payroll.Register(h.Store.ActiveEmployees(), h.Store.Records())
	api.Success(w, reports, reqID)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	emp, ok := h.Store.GetEmployee(chi.URLParam(r, "employeeID"))
	if !ok {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", reqID)
		return
	}

	report := payroll.Calculate(emp, h.Store.Records())
	if report == nil {
		// Inactive employees have no payroll; absence of a report is "not
		// applicable", not a fault.
		api.Fail(w, http.StatusNotFound, "payroll_not_applicable", "employee is not payroll-eligible", reqID)
		return
	}
	api.Success(w, report, reqID)
}

// handleExportCSV emits one row per active employee, in active-employee
// iteration order. Rounding happens here and only here.
func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	reports := payroll.Register(h.Store.ActiveEmployees(), h.Store.Records())

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "AttendFlow_Active_Payroll_"+time.Now().Format("2006-01-02")+".csv"))

	writer := csv.NewWriter(w)
	_ = writer.Write([]string{"Name", "Employee ID", "Department", "Status", "Base Salary", "Bonus", "Penalty", "Loan", "Total OT Hrs", "Net Pay"})
	for _, report := range reports {
		_ = writer.Write([]string{
			report.Name,
			report.EmployeeNumber,
			report.Department,
			report.Status,
			formatAmount(report.BaseSalary),
			formatAmount(report.Bonus),
			formatAmount(report.Penalty),
			formatAmount(report.LoanRepayment),
			strconv.FormatFloat(report.OvertimeHours, 'f', 1, 64),
			strconv.FormatFloat(report.NetPay, 'f', 2, 64),
		})
	}
	writer.Flush()
}

func (h *Handler) handlePayslipPDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	emp, ok := h.Store.GetEmployee(chi.URLParam(r, "employeeID"))
	if !ok {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", reqID)
		return
	}
	report := payroll.Calculate(emp, h.Store.Records())
	if report == nil {
		api.Fail(w, http.StatusNotFound, "payroll_not_applicable", "employee is not payroll-eligible", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "payslip-"+report.EmployeeNumber+".pdf"))
	if err := payroll.WritePayslipPDF(w, *report); err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to render payslip", reqID)
	}
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
