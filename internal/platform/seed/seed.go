// Package seed loads the demo dataset into the ledger: three monitored
// locations, ten employees, and a deterministic first week of February 2026
// attendance. Seeding bypasses CheckIn/CheckOut on purpose so the sheet can
// include overtime tags and closed history.
package seed

import (
	"strconv"
	"time"

	"attendflow/internal/domain/attendance"
)

func Locations() []attendance.Location {
	return []attendance.Location{
		{
			ID: "loc-1", Name: "Headquarters Office", Type: attendance.PremiseOffice,
			Latitude: 37.7749, Longitude: -122.4194, Radius: 50,
			QRCode: "HQ-OFFICE-001", StartTime: "09:00", EndTime: "18:00",
		},
		{
			ID: "loc-2", Name: "Main Factory", Type: attendance.PremiseFactory,
			Latitude: 37.7833, Longitude: -122.4167, Radius: 100,
			QRCode: "FACT-MAIN-002", StartTime: "08:00", EndTime: "17:00",
		},
		{
			ID: "loc-3", Name: "Logistics Warehouse", Type: attendance.PremiseWarehouse,
			Latitude: 37.7510, Longitude: -122.4476, Radius: 75,
			QRCode: "WH-LOG-003", StartTime: "00:00", EndTime: "23:59",
		},
	}
}

func Employees() []attendance.Employee {
	return []attendance.Employee{
		{ID: "emp-1", Name: "John Doe", EmployeeID: "EMP001", Role: attendance.RoleEmployee, LocationID: "loc-1", Department: "Engineering", BaseSalary: 3500, HourlyRate: 22, OTMultiplier: 1.5, Bonus: 200, Avatar: "https://picsum.photos/seed/emp1/200", Status: attendance.StatusActive, Onboarded: true},
		{ID: "emp-2", Name: "Jane Smith", EmployeeID: "EMP002", Role: attendance.RoleAdmin, LocationID: "loc-1", Department: "Human Resources", BaseSalary: 5500, HourlyRate: 35, OTMultiplier: 1.5, LoanRepayment: 500, Bonus: 300, Avatar: "https://picsum.photos/seed/emp2/200", Status: attendance.StatusActive, Onboarded: true},
		{ID: "emp-3", Name: "Mike Wilson", EmployeeID: "EMP003", Role: attendance.RoleEmployee, LocationID: "loc-2", Department: "Operations", BaseSalary: 2800, HourlyRate: 18, OTMultiplier: 1.25, Penalty: 100, Avatar: "https://picsum.photos/seed/emp3/200", Status: attendance.StatusInactive, Onboarded: true},
		{ID: "emp-4", Name: "Sarah Jenkins", EmployeeID: "EMP004", Role: attendance.RoleEmployee, LocationID: "loc-1", Department: "Marketing", BaseSalary: 3200, HourlyRate: 20, OTMultiplier: 1.5, Bonus: 500, Avatar: "https://picsum.photos/seed/emp4/200", Status: attendance.StatusInactive, Onboarded: true},
		{ID: "emp-5", Name: "David Chen", EmployeeID: "EMP005", Role: attendance.RoleEmployee, LocationID: "loc-2", Department: "Quality Control", BaseSalary: 2600, HourlyRate: 16, OTMultiplier: 1.5, LoanRepayment: 200, Avatar: "https://picsum.photos/seed/emp5/200", Status: attendance.StatusActive, Onboarded: true},
		{ID: "emp-6", Name: "Elena Rodriguez", EmployeeID: "EMP006", Role: attendance.RoleEmployee, LocationID: "loc-3", Department: "Logistics", BaseSalary: 2900, HourlyRate: 19, OTMultiplier: 1.5, Bonus: 100, Avatar: "https://picsum.photos/seed/emp6/200", Status: attendance.StatusActive, Onboarded: true},
		{ID: "emp-7", Name: "Robert Taylor", EmployeeID: "EMP007", Role: attendance.RoleEmployee, LocationID: "loc-1", Department: "Sales", BaseSalary: 4000, HourlyRate: 25, OTMultiplier: 1.5, Bonus: 1200, Avatar: "https://picsum.photos/seed/emp7/200", Status: attendance.StatusActive, Onboarded: true},
		{ID: "emp-8", Name: "Lisa Wang", EmployeeID: "EMP008", Role: attendance.RoleEmployee, LocationID: "loc-2", Department: "Maintenance", BaseSalary: 2400, HourlyRate: 15, OTMultiplier: 1.25, Avatar: "https://picsum.photos/seed/emp8/200", Status: attendance.StatusActive, Onboarded: true},
		{ID: "emp-9", Name: "Kevin Miller", EmployeeID: "EMP009", Role: attendance.RoleEmployee, LocationID: "loc-3", Department: "Security", BaseSalary: 2700, HourlyRate: 17, OTMultiplier: 1.5, LoanRepayment: 150, Bonus: 50, Avatar: "https://picsum.photos/seed/emp9/200", Status: attendance.StatusActive, Onboarded: true},
		{ID: "emp-10", Name: "Anita Gupta", EmployeeID: "EMP010", Role: attendance.RoleEmployee, LocationID: "loc-1", Department: "Legal", BaseSalary: 6000, HourlyRate: 40, OTMultiplier: 1.5, Avatar: "https://picsum.photos/seed/emp10/200", Status: attendance.StatusActive, Onboarded: true},
	}
}

type shift struct {
	inHour, inMin   int
	outHour, outMin int
	outNextDay      bool
	status          string
	absent          bool
}

// februaryShift reproduces the demo attendance sheet for Feb 1-5 2026.
// Absent days yield no record at all; the sheet predates end-of-day absence
// sweeps and simply leaves a gap.
func februaryShift(employeeID string, day int) shift {
	switch employeeID {
	case "emp-1":
		return shift{inHour: 9, outHour: 18, status: attendance.RecordPresent}
	case "emp-2":
		if day == 2 || day == 4 {
			return shift{inHour: 10, inMin: 15, outHour: 18, status: attendance.RecordLate}
		}
		return shift{inHour: 8, inMin: 55, outHour: 18, status: attendance.RecordPresent}
	case "emp-3":
		if day%2 != 0 {
			return shift{inHour: 8, outHour: 20, status: attendance.RecordOvertime}
		}
		return shift{inHour: 8, outHour: 17, status: attendance.RecordPresent}
	case "emp-4":
		if day == 5 {
			return shift{absent: true}
		}
		return shift{inHour: 9, outHour: 18, status: attendance.RecordPresent}
	case "emp-5":
		return shift{inHour: 9, inMin: 45, outHour: 18, outMin: 30, status: attendance.RecordLate}
	case "emp-6":
		return shift{inHour: 18, outHour: 4, outNextDay: true, status: attendance.RecordOvertime}
	case "emp-7":
		return shift{inHour: 9, outHour: 14, status: attendance.RecordPresent}
	case "emp-8":
		return shift{inHour: 7, outHour: 16, status: attendance.RecordPresent}
	case "emp-9":
		if day == 1 || day == 2 {
			return shift{absent: true}
		}
		return shift{inHour: 8, outHour: 17, status: attendance.RecordPresent}
	case "emp-10":
		switch day {
		case 1:
			return shift{inHour: 8, inMin: 50, outHour: 18, status: attendance.RecordPresent}
		case 2:
			return shift{inHour: 11, outHour: 18, status: attendance.RecordLate}
		case 3:
			return shift{inHour: 9, outHour: 18, status: attendance.RecordPresent}
		case 4:
			return shift{inHour: 9, outHour: 22, status: attendance.RecordOvertime}
		default:
			return shift{absent: true}
		}
	}
	return shift{absent: true}
}

func Records() []attendance.Record {
	var records []attendance.Record
	for _, emp := range Employees() {
		for day := 1; day <= 5; day++ {
			sh := februaryShift(emp.ID, day)
			if sh.absent {
				continue
			}

			checkIn := time.Date(2026, time.February, day, sh.inHour, sh.inMin, 0, 0, time.UTC)
			outDay := day
			if sh.outNextDay {
				outDay++
			}
			checkOut := time.Date(2026, time.February, outDay, sh.outHour, sh.outMin, 0, 0, time.UTC)

			records = append(records, attendance.Record{
				ID:         "att-" + emp.ID + "-" + strconv.Itoa(day),
				EmployeeID: emp.ID,
				LocationID: emp.LocationID,
				CheckIn:    &checkIn,
				CheckOut:   &checkOut,
				Status:     sh.status,
			})
		}
	}
	return records
}

// Load populates an empty store with the demo dataset.
func Load(store *attendance.Store) {
	for _, loc := range Locations() {
		store.AddLocation(loc)
	}
	for _, emp := range Employees() {
		store.AddEmployee(emp)
	}
	for _, rec := range Records() {
		store.SeedRecord(rec)
	}
}
