package record

import "errors"

// Attendance record domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("employee has already checked in for this day")
	ErrAlreadyCheckedOut = errors.New("employee has already checked out for this day")
	ErrNotCheckedIn      = errors.New("employee has not checked in for this day")

	// General errors
	ErrRecordNotFound  = errors.New("attendance record not found")
	ErrDuplicateRecord = errors.New("attendance record already exists for this employee and day")
)
