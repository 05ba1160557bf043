package attendance

import (
	"strconv"
	"strings"
)

// ParseEmployeeCSV parses bulk-import text with columns
// name,employeeId,role,locationId,department,baseSalary,hourlyRate.
// The first row is treated as a header and skipped, as is any row with fewer
// than seven columns. Parsed employees carry import defaults: otMultiplier
// 1.5, zero penalty/loan/bonus, ACTIVE status, onboarding pending.
func ParseEmployeeCSV(text string, fallbackLocationID string) []Employee {
	rows := strings.Split(text, "\n")
	if len(rows) == 0 {
		return nil
	}

	var employees []Employee
	for _, row := range rows[1:] {
		columns := strings.Split(row, ",")
		if len(columns) < 7 {
			continue
		}

		role := strings.TrimSpace(columns[2])
		if role == "" {
			role = RoleEmployee
		}
		locationID := strings.TrimSpace(columns[3])
		if locationID == "" {
			locationID = fallbackLocationID
		}
		department := strings.TrimSpace(columns[4])
		if department == "" {
			department = "Unassigned"
		}

		employees = append(employees, Employee{
			Name:         strings.TrimSpace(columns[0]),
			EmployeeID:   strings.TrimSpace(columns[1]),
			Role:         role,
			LocationID:   locationID,
			Department:   department,
			BaseSalary:   parseAmount(columns[5]),
			HourlyRate:   parseAmount(columns[6]),
			OTMultiplier: 1.5,
			Status:       StatusActive,
			Onboarded:    false,
		})
	}
	return employees
}

func parseAmount(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}
