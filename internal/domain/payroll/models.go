package payroll

// Report is one employee's payroll over their closed attendance records.
// All currency values are in the same unit as the employee's compensation
// fields; no conversion or rounding is applied.
type Report struct {
	EmployeeID       string  `json:"employeeId"`
	EmployeeNumber   string  `json:"employeeNumber"`
	Name             string  `json:"name"`
	Department       string  `json:"department"`
	Status           string  `json:"status"`
	TotalHours       float64 `json:"totalHours"`
	OvertimeHours    float64 `json:"overtimeHours"`
	BaseSalary       float64 `json:"baseSalary"`
	Bonus            float64 `json:"bonus"`
	Penalty          float64 `json:"penalty"`
	LoanRepayment    float64 `json:"loanRepayment"`
	OvertimePay      float64 `json:"overtimePay"`
	TotalAdjustments float64 `json:"totalAdjustments"`
	NetPay           float64 `json:"netPay"`
}
