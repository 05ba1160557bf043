// Package reports aggregates ledger data for the admin dashboard and the
// employee portal. Everything here is a pure fold over copies of the ledger
// collections.
package reports

import "attendflow/internal/domain/attendance"

type LocationAnalytics struct {
	LocationID string `json:"locationId"`
	Name       string `json:"name"`
	Total      int    `json:"total"`
	Present    int    `json:"present"`
	Late       int    `json:"late"`
	Overtime   int    `json:"overtime"`
	Absent     int    `json:"absent"`
}

type EmployeeStats struct {
	TotalShifts   int     `json:"totalShifts"`
	LateDays      int     `json:"lateDays"`
	TotalHours    float64 `json:"totalHours"`
	OvertimeHours float64 `json:"overtimeHours"`
}

// ByLocation tallies attendance statuses per monitored location, in the
// location collection's order. Records pointing at deleted locations are not
// represented; they remain valid history but have no row to land on.
func ByLocation(locations []attendance.Location, records []attendance.Record) []LocationAnalytics {
	out := make([]LocationAnalytics, len(locations))
	index := make(map[string]int, len(locations))
	for i, loc := range locations {
		out[i] = LocationAnalytics{LocationID: loc.ID, Name: loc.Name}
		index[loc.ID] = i
	}

	for _, rec := range records {
		i, ok := index[rec.LocationID]
		if !ok {
			continue
		}
		out[i].Total++
		switch rec.Status {
		case attendance.RecordPresent:
			out[i].Present++
		case attendance.RecordLate:
			out[i].Late++
		case attendance.RecordOvertime:
			out[i].Overtime++
		case attendance.RecordAbsent:
			out[i].Absent++
		}
	}
	return out
}

// ForEmployee summarizes one employee's history the way the portal shows it:
// shifts with a check-in, late days, and hour totals over closed records.
func ForEmployee(records []attendance.Record) EmployeeStats {
	var stats EmployeeStats
	for _, rec := range records {
		if rec.CheckIn == nil {
			continue
		}
		stats.TotalShifts++
		if rec.Status == attendance.RecordLate {
			stats.LateDays++
		}
		if rec.Closed() {
			stats.TotalHours += attendance.ShiftHours(rec)
			stats.OvertimeHours += attendance.OvertimeHours(rec)
		}
	}
	return stats
}
