package reports

import (
	"testing"
	"time"

	"attendflow/internal/domain/attendance"
)

func record(employeeID, locationID, status string, checkIn time.Time, hours float64) attendance.Record {
	rec := attendance.Record{
		EmployeeID: employeeID,
		LocationID: locationID,
		Status:     status,
	}
	if status != attendance.RecordAbsent {
		in := checkIn
		out := checkIn.Add(time.Duration(hours * float64(time.Hour)))
		rec.CheckIn = &in
		rec.CheckOut = &out
	}
	return rec
}

func TestByLocation(t *testing.T) {
	locations := []attendance.Location{
		{ID: "loc-1", Name: "Headquarters Office"},
		{ID: "loc-2", Name: "Main Factory"},
	}
	day := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	records := []attendance.Record{
		record("emp-1", "loc-1", attendance.RecordPresent, day, 9),
		record("emp-2", "loc-1", attendance.RecordLate, day, 8),
		record("emp-3", "loc-2", attendance.RecordOvertime, day, 12),
		record("emp-4", "loc-1", attendance.RecordAbsent, day, 0),
		record("emp-5", "loc-gone", attendance.RecordPresent, day, 8),
	}

	analytics := ByLocation(locations, records)
	if len(analytics) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(analytics))
	}

	hq := analytics[0]
	if hq.Total != 3 || hq.Present != 1 || hq.Late != 1 || hq.Absent != 1 {
		t.Fatalf("unexpected HQ tallies: %+v", hq)
	}
	factory := analytics[1]
	if factory.Total != 1 || factory.Overtime != 1 {
		t.Fatalf("unexpected factory tallies: %+v", factory)
	}
}

func TestForEmployee(t *testing.T) {
	day := time.Date(2026, 2, 2, 9, 45, 0, 0, time.UTC)
	open := day.AddDate(0, 0, 1)
	records := []attendance.Record{
		record("emp-5", "loc-1", attendance.RecordLate, day, 8.75),
		record("emp-5", "loc-1", attendance.RecordPresent, day.AddDate(0, 0, -1), 10),
		{EmployeeID: "emp-5", LocationID: "loc-1", Status: attendance.RecordPresent, CheckIn: &open},
		record("emp-5", "loc-1", attendance.RecordAbsent, day, 0),
	}

	stats := ForEmployee(records)
	if stats.TotalShifts != 3 {
		t.Fatalf("expected 3 shifts with a check-in, got %d", stats.TotalShifts)
	}
	if stats.LateDays != 1 {
		t.Fatalf("expected 1 late day, got %d", stats.LateDays)
	}
	if stats.TotalHours != 18.75 {
		t.Fatalf("expected 18.75 total hours, got %v", stats.TotalHours)
	}
	if stats.OvertimeHours != 2.75 {
		t.Fatalf("expected 2.75 overtime hours, got %v", stats.OvertimeHours)
	}
}
