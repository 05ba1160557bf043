package attendance

import "testing"

func TestParseEmployeeCSV(t *testing.T) {
	text := "Name,Employee ID,Role,Location,Department,Base Salary,Hourly Rate\n" +
		"Alice Green,EMP100,EMPLOYEE,loc-1,Engineering,3000,20\n" +
		"Bob Stone,EMP101,,,,4000,25"

	employees := ParseEmployeeCSV(text, "loc-default")
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}

	alice := employees[0]
	if alice.Name != "Alice Green" || alice.EmployeeID != "EMP100" {
		t.Fatalf("unexpected first employee: %+v", alice)
	}
	if alice.BaseSalary != 3000 || alice.HourlyRate != 20 {
		t.Fatal("unexpected compensation fields")
	}
	if alice.OTMultiplier != 1.5 {
		t.Fatalf("expected default otMultiplier 1.5, got %v", alice.OTMultiplier)
	}
	if alice.Penalty != 0 || alice.LoanRepayment != 0 || alice.Bonus != 0 {
		t.Fatal("expected zeroed adjustments on import")
	}

	bob := employees[1]
	if bob.Role != RoleEmployee {
		t.Fatalf("expected default role, got %s", bob.Role)
	}
	if bob.LocationID != "loc-default" {
		t.Fatalf("expected fallback location, got %s", bob.LocationID)
	}
	if bob.Department != "Unassigned" {
		t.Fatalf("expected default department, got %s", bob.Department)
	}
}

func TestParseEmployeeCSVSkipsShortRows(t *testing.T) {
	text := "Name,Employee ID,Role,Location,Department,Base Salary,Hourly Rate\n" +
		"Too,Short,Row\n" +
		"\n" +
		"Carol White,EMP102,EMPLOYEE,loc-1,Sales,3500,21"

	employees := ParseEmployeeCSV(text, "loc-1")
	if len(employees) != 1 {
		t.Fatalf("expected only the well-formed row, got %d", len(employees))
	}
	if employees[0].Name != "Carol White" {
		t.Fatalf("unexpected employee: %+v", employees[0])
	}
}

func TestParseEmployeeCSVMalformedAmounts(t *testing.T) {
	text := "header\nDan Brown,EMP103,EMPLOYEE,loc-1,Ops,not-a-number,abc"

	employees := ParseEmployeeCSV(text, "loc-1")
	if len(employees) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(employees))
	}
	if employees[0].BaseSalary != 0 || employees[0].HourlyRate != 0 {
		t.Fatal("expected malformed amounts to default to zero")
	}
}
