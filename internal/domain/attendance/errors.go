package attendance

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrLocationNotFound = errors.New("assigned location not found")
	ErrTokenMismatch    = errors.New("check-in token does not match location")
	ErrOutsideGeofence  = errors.New("coordinate outside location geofence")
	ErrAlreadyCheckedIn = errors.New("an open attendance record already exists for today")
)
