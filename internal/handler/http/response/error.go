package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/timedesk/timekeeper-backend-go/internal/domain/code"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/department"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/employee"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/record"
	"github.com/timedesk/timekeeper-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance record domain errors
	case errors.Is(err, record.ErrAlreadyCheckedIn):
		Conflict(w, "Employee has already checked in for this day")
	case errors.Is(err, record.ErrAlreadyCheckedOut):
		Conflict(w, "Employee has already checked out for this day")
	case errors.Is(err, record.ErrDuplicateRecord):
		Conflict(w, "Attendance record already exists for this employee and day")
	case errors.Is(err, record.ErrNotCheckedIn):
		Conflict(w, "Employee has not checked in for this day")
	case errors.Is(err, record.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Attendance code domain errors
	case errors.Is(err, code.ErrCodeNotFound):
		NotFound(w, "Attendance code not found")
	case errors.Is(err, code.ErrDuplicateCode):
		Conflict(w, "Attendance code already exists")
	case errors.Is(err, code.ErrCodeInactive):
		Conflict(w, "Attendance code is inactive")

	// Roster domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is not active")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Upstream timeouts
	case errors.Is(err, context.DeadlineExceeded):
		GatewayTimeout(w, "Upstream operation timed out")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
