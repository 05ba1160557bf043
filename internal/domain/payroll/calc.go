package payroll

import "attendflow/internal/domain/attendance"

// Calculate produces the payroll report for one employee over their closed
// attendance records. It returns nil for any employee whose status is not
// ACTIVE; only active employees are payroll-eligible, and callers treat a nil
// report as "not applicable" rather than an error.
//
// All arithmetic stays in float64 with no internal rounding; presentation
// rounding happens at export time only.
func Calculate(emp attendance.Employee, records []attendance.Record) *Report {
	if !emp.Active() {
		return nil
	}

	var totalHours, overtimeHours float64
	for _, rec := range records {
		if rec.EmployeeID != emp.ID || !rec.Closed() {
			continue
		}
		hours := attendance.ShiftHours(rec)
		totalHours += hours
		overtimeHours += attendance.OvertimeHours(rec)
	}

	overtimePay := overtimeHours * emp.HourlyRate * emp.OTMultiplier
	totalAdjustments := emp.Bonus - (emp.Penalty + emp.LoanRepayment)

	return &Report{
		EmployeeID:       emp.ID,
		EmployeeNumber:   emp.EmployeeID,
		Name:             emp.Name,
		Department:       emp.Department,
		Status:           emp.Status,
		TotalHours:       totalHours,
		OvertimeHours:    overtimeHours,
		BaseSalary:       emp.BaseSalary,
		Bonus:            emp.Bonus,
		Penalty:          emp.Penalty,
		LoanRepayment:    emp.LoanRepayment,
		OvertimePay:      overtimePay,
		TotalAdjustments: totalAdjustments,
		NetPay:           emp.BaseSalary + overtimePay + totalAdjustments,
	}
}

// Register applies Calculate to every active employee in iteration order.
// Employees without a report are skipped silently, never surfaced as errors.
func Register(employees []attendance.Employee, records []attendance.Record) []Report {
	var reports []Report
	for _, emp := range employees {
		if report := Calculate(emp, records); report != nil {
			reports = append(reports, *report)
		}
	}
	return reports
}
