package attendance

import "time"

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"

	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"

	PremiseOffice    = "OFFICE"
	PremiseFactory   = "FACTORY"
	PremiseWarehouse = "WAREHOUSE"
	PremiseShowroom  = "SHOWROOM"

	RecordPresent  = "PRESENT"
	RecordLate     = "LATE"
	RecordAbsent   = "ABSENT"
	RecordOvertime = "OVERTIME"
)

var PremiseTypes = []string{PremiseOffice, PremiseFactory, PremiseWarehouse, PremiseShowroom}

// Location is a monitored premise with a circular geofence and a check-in
// token printed as a QR code on site.
type Location struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
	QRCode    string  `json:"qrCode"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
}

type Employee struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	EmployeeID    string  `json:"employeeId"`
	Role          string  `json:"role"`
	LocationID    string  `json:"locationId"`
	Department    string  `json:"department"`
	BaseSalary    float64 `json:"baseSalary"`
	HourlyRate    float64 `json:"hourlyRate"`
	OTMultiplier  float64 `json:"otMultiplier"`
	Penalty       float64 `json:"penalty"`
	LoanRepayment float64 `json:"loanRepayment"`
	Bonus         float64 `json:"bonus"`
	Avatar        string  `json:"avatar"`
	Status        string  `json:"status"`
	Onboarded     bool    `json:"onboarded"`
}

func (e Employee) Active() bool {
	return e.Status == StatusActive
}

// Record is one shift instance. A record with CheckIn set and CheckOut unset
// is open; closed records are immutable history.
type Record struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	LocationID string     `json:"locationId"`
	CheckIn    *time.Time `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut"`
	Status     string     `json:"status"`
	Latitude   float64    `json:"lat"`
	Longitude  float64    `json:"lng"`
	PhotoRef   string     `json:"photoUrl,omitempty"`
}

func (r Record) Open() bool {
	return r.CheckIn != nil && r.CheckOut == nil
}

func (r Record) Closed() bool {
	return r.CheckIn != nil && r.CheckOut != nil
}

// OnDay reports whether the record's check-in falls on the same calendar day
// as the given time, in that time's location.
func (r Record) OnDay(day time.Time) bool {
	if r.CheckIn == nil {
		return false
	}
	y1, m1, d1 := r.CheckIn.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
