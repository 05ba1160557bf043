package attendance

import "time"

// Hour-of-day threshold for lateness and the regular shift length used for
// overtime. The lateness rule intentionally ignores each location's
// configured start time; see the per-location StartTime field, which is
// stored and displayed but not consulted here.
const (
	lateAfterHour   = 9
	regularShiftHrs = 8.0
)

// CheckInStatus classifies a check-in timestamp. Check-ins anywhere within
// hour 9 (up to 09:59) are PRESENT; hour 10 onward is LATE.
func CheckInStatus(checkIn time.Time) string {
	if checkIn.Hour() > lateAfterHour {
		return RecordLate
	}
	return RecordPresent
}

// ShiftHours returns the duration of a closed record in hours, or 0 when the
// record is not closed.
func ShiftHours(rec Record) float64 {
	if !rec.Closed() {
		return 0
	}
	return rec.CheckOut.Sub(*rec.CheckIn).Hours()
}

// OvertimeHours returns the portion of a closed record beyond the regular
// eight-hour shift.
func OvertimeHours(rec Record) float64 {
	hours := ShiftHours(rec)
	if hours > regularShiftHrs {
		return hours - regularShiftHrs
	}
	return 0
}
