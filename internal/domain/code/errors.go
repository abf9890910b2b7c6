package code

import "errors"

// Attendance code domain errors
var (
	ErrCodeNotFound  = errors.New("attendance code not found")
	ErrDuplicateCode = errors.New("attendance code token already exists")
	ErrCodeInactive  = errors.New("attendance code is deactivated")
)
