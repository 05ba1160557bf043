package attendance

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"attendflow/internal/domain/geofence"
)

// Store is the authoritative in-memory ledger of locations, employees and
// attendance records. All mutation goes through its methods; a single mutex
// keeps the one-open-record-per-employee-per-day invariant safe under
// concurrent HTTP requests.
type Store struct {
	mu        sync.Mutex
	validator geofence.Validator
	now       func() time.Time

	locations []Location
	employees []Employee
	records   []Record
}

func NewStore(validator geofence.Validator) *Store {
	return &Store{
		validator: validator,
		now:       time.Now,
	}
}

// SetClock overrides the time source. Test hook only.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// CheckIn verifies the scanned token and the reported coordinate against the
// employee's assigned location and, on success, opens a new attendance record
// at the head of the collection. The ledger is left unchanged on any failure.
func (s *Store) CheckIn(employeeID string, token string, coords geofence.Coordinate, photoRef string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.findEmployee(employeeID)
	if !ok {
		return Record{}, ErrEmployeeNotFound
	}
	loc, ok := s.findLocation(emp.LocationID)
	if !ok {
		return Record{}, ErrLocationNotFound
	}
	if token != loc.QRCode {
		return Record{}, ErrTokenMismatch
	}

	now := s.now()
	for _, rec := range s.records {
		if rec.EmployeeID == emp.ID && rec.Open() && rec.OnDay(now) {
			return Record{}, ErrAlreadyCheckedIn
		}
	}

	target := geofence.Coordinate{Latitude: loc.Latitude, Longitude: loc.Longitude}
	if !s.validator.WithinRadius(coords, target, loc.Radius) {
		return Record{}, ErrOutsideGeofence
	}

	checkIn := now
	rec := Record{
		ID:         "att-" + uuid.NewString(),
		EmployeeID: emp.ID,
		LocationID: loc.ID,
		CheckIn:    &checkIn,
		Status:     CheckInStatus(checkIn),
		Latitude:   coords.Latitude,
		Longitude:  coords.Longitude,
		PhotoRef:   photoRef,
	}
	s.records = append([]Record{rec}, s.records...)
	return rec, nil
}

// CheckOut closes today's open record for the employee. With no open record
// it is a no-op returning false, not an error.
func (s *Store) CheckOut(employeeID string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for i, rec := range s.records {
		if rec.EmployeeID == employeeID && rec.Open() && rec.OnDay(now) {
			checkOut := now
			s.records[i].CheckOut = &checkOut
			return s.records[i], true
		}
	}
	return Record{}, false
}

// SeedRecord inserts a prebuilt record, including explicit ABSENT records
// that are unreachable through CheckIn/CheckOut.
func (s *Store) SeedRecord(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]Record{rec}, s.records...)
}

// TodayRecord returns the employee's record for the current calendar day.
func (s *Store) TodayRecord(employeeID string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, rec := range s.records {
		if rec.EmployeeID == employeeID && rec.OnDay(now) {
			return rec, true
		}
	}
	return Record{}, false
}

// History returns the employee's records, newest check-in first.
func (s *Store) History(employeeID string) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Record
	for _, rec := range s.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := time.Time{}, time.Time{}
		if out[i].CheckIn != nil {
			ti = *out[i].CheckIn
		}
		if out[j].CheckIn != nil {
			tj = *out[j].CheckIn
		}
		return ti.After(tj)
	})
	return out
}

// Records returns a copy of every attendance record, newest first.
func (s *Store) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) AddLocation(loc Location) Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	if loc.ID == "" {
		loc.ID = "loc-" + uuid.NewString()
	}
	s.locations = append(s.locations, loc)
	return loc
}

func (s *Store) UpdateLocation(loc Location) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.locations {
		if s.locations[i].ID == loc.ID {
			s.locations[i] = loc
			return true
		}
	}
	return false
}

// DeleteLocation removes a location without cascading: employees and records
// keep their location references even when they no longer resolve.
func (s *Store) DeleteLocation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.locations {
		if s.locations[i].ID == id {
			s.locations = append(s.locations[:i], s.locations[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) GetLocation(id string) (Location, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocation(id)
}

func (s *Store) Locations() []Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Location, len(s.locations))
	copy(out, s.locations)
	return out
}

func (s *Store) AddEmployee(emp Employee) Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	prepareEmployee(&emp)
	s.employees = append([]Employee{emp}, s.employees...)
	return emp
}

// prepareEmployee fills generated identifiers, canonicalizes the role and
// status enums, and applies defaults for unset enum fields. Every write path
// goes through it so stored employees always carry the upper-case enum values
// the rest of the ledger compares against.
func prepareEmployee(emp *Employee) {
	if emp.ID == "" {
		emp.ID = "emp-" + uuid.NewString()
	}
	emp.Role = canonicalEnum(emp.Role)
	emp.Status = canonicalEnum(emp.Status)
	if emp.Role == "" {
		emp.Role = RoleEmployee
	}
	if emp.Status == "" {
		emp.Status = StatusActive
	}
}

func canonicalEnum(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// UpdateEmployee replaces the stored employee. Role and status omitted from
// the replacement keep their stored values; a payload that leaves them out
// must not silently drop the employee out of the active set.
func (s *Store) UpdateEmployee(emp Employee) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp.Role = canonicalEnum(emp.Role)
	emp.Status = canonicalEnum(emp.Status)
	for i := range s.employees {
		if s.employees[i].ID == emp.ID {
			if emp.Role == "" {
				emp.Role = s.employees[i].Role
			}
			if emp.Status == "" {
				emp.Status = s.employees[i].Status
			}
			s.employees[i] = emp
			return true
		}
	}
	return false
}

// ImportEmployees appends a batch at the tail of the collection, filling
// generated identifiers and default financial fields where the import left
// them unset. Single adds prepend; imports keep the batch's own order after
// the existing roster.
func (s *Store) ImportEmployees(batch []Employee) []Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	imported := make([]Employee, 0, len(batch))
	for _, emp := range batch {
		if emp.OTMultiplier == 0 {
			emp.OTMultiplier = 1.5
		}
		if strings.TrimSpace(emp.Department) == "" {
			emp.Department = "Unassigned"
		}
		prepareEmployee(&emp)
		s.employees = append(s.employees, emp)
		imported = append(imported, emp)
	}
	return imported
}

// ToggleEmployeeStatus flips active/inactive. Attendance and payroll history
// are left untouched.
func (s *Store) ToggleEmployeeStatus(id string) (Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.employees {
		if s.employees[i].ID == id {
			if s.employees[i].Status == StatusActive {
				s.employees[i].Status = StatusInactive
			} else {
				s.employees[i].Status = StatusActive
			}
			return s.employees[i], true
		}
	}
	return Employee{}, false
}

func (s *Store) GetEmployee(id string) (Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findEmployee(id)
}

func (s *Store) Employees() []Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// ActiveEmployees returns employees eligible for payroll, in collection order.
func (s *Store) ActiveEmployees() []Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Employee
	for _, emp := range s.employees {
		if emp.Active() {
			out = append(out, emp)
		}
	}
	return out
}

func (s *Store) findEmployee(id string) (Employee, bool) {
	for _, emp := range s.employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return Employee{}, false
}

func (s *Store) findLocation(id string) (Location, bool) {
	for _, loc := range s.locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return Location{}, false
}
