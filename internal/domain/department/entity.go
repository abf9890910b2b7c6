package department

import "time"

type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DepartmentWithEmployeeCount is the listing projection: departments plus how
// many active employees each holds.
type DepartmentWithEmployeeCount struct {
	Department
	EmployeeCount int
}
