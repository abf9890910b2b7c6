package employee

import "time"

// Employee is the roster entry attendance records hang off. The tracker does
// not own employee lifecycle; it only reads the roster.
type Employee struct {
	ID           string
	EmployeeCode string // format: 1234-5678
	FirstName    string
	LastName     string
	Position     *string
	DepartmentID *string
	IsActive     bool
	HireDate     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	DepartmentName *string
}

// FullName renders "LASTNAME Firstname" the way the grid and exports print it.
func (e Employee) FullName() string {
	return e.LastName + " " + e.FirstName
}
