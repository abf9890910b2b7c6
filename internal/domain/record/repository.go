package record

import (
	"context"
	"time"
)

// RecordRepository defines data access for attendance records. The store
// enforces the one-record-per-(employee, day) invariant: Create behaves as
// "insert if absent, else reject" and reports a conflict as
// ErrDuplicateRecord, so two concurrent check-ins cannot both succeed.
type RecordRepository interface {
	// Create inserts a new record for (EmployeeID, Date).
	Create(ctx context.Context, rec AttendanceRecord) (AttendanceRecord, error)

	// GetByID retrieves a record with employee/department joins.
	GetByID(ctx context.Context, id string) (AttendanceRecord, error)

	// GetByEmployeeAndDate retrieves the record for one employee's day,
	// or nil when the day has no record yet.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*AttendanceRecord, error)

	// Update rewrites a record's mutable fields.
	Update(ctx context.Context, rec AttendanceRecord) error

	// ListByDateRange retrieves records inside [filter.From, filter.To],
	// optionally scoped to one employee or one department.
	ListByDateRange(ctx context.Context, filter RangeFilter) ([]AttendanceRecord, error)

	// Delete removes a record by id (explicit administrative action only).
	Delete(ctx context.Context, id string) error
}

// RangeFilter is a typed query filter; there is deliberately no free-form
// operator rewriting here.
type RangeFilter struct {
	EmployeeID   *string
	DepartmentID *string
	From         time.Time // inclusive, day start
	To           time.Time // inclusive, day start
}
