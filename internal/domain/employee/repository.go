package employee

import "context"

// EmployeeRepository is read-only: the tracker consumes the roster, it does
// not manage it.
type EmployeeRepository interface {
	// GetByID retrieves one employee with their department name joined in.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive retrieves active employees ordered by last name then first
	// name, optionally scoped to one department.
	ListActive(ctx context.Context, departmentID *string) ([]Employee, error)
}
