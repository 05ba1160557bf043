package payroll

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WritePayslipPDF renders a single-page payslip for the report. Rounding to
// two decimals happens here, at presentation time only.
func WritePayslipPDF(w io.Writer, report Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", report.Name, report.EmployeeNumber))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", report.Department))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Total hours: %.1f", report.TotalHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Overtime hours: %.1f", report.OvertimeHours))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Base salary: %.2f", report.BaseSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Overtime pay: %.2f", report.OvertimePay))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Bonus: %.2f", report.Bonus))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Penalty: %.2f", report.Penalty))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Loan repayment: %.2f", report.LoanRepayment))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net pay: %.2f", report.NetPay))

	return pdf.Output(w)
}
