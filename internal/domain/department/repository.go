package department

import "context"

type DepartmentRepository interface {
	// GetByID retrieves one department.
	GetByID(ctx context.Context, id string) (Department, error)

	// List retrieves all departments ordered by name, each with its active
	// employee count.
	List(ctx context.Context) ([]DepartmentWithEmployeeCount, error)
}
