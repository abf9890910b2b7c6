package report

import (
	"context"

	"github.com/timedesk/timekeeper-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

// StatusCounts tallies records by status over a period.
type StatusCounts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	HalfDay int `json:"half_day"`
	Leave   int `json:"leave"`
}

// Summary aggregates one scope (whole org or one department) over a period.
type Summary struct {
	From             string       `json:"from"`
	To               string       `json:"to"`
	EmployeeCount    int          `json:"employee_count"`
	ExpectedDays     int          `json:"expected_days"` // weekdays in period x employees
	Counts           StatusCounts `json:"counts"`
	TotalWorkHours   float64      `json:"total_work_hours"`
	AverageWorkHours float64      `json:"average_work_hours"` // over present/late records only
	AttendanceRate   float64      `json:"attendance_rate"`    // percent, one decimal
	TotalOvertime    float64      `json:"total_overtime"`
}

// DepartmentSummary is one department's slice of the breakdown. Employees
// without a department land in the "unassigned" bucket.
type DepartmentSummary struct {
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName string  `json:"department_name"`
	Summary
}

// SummaryRequest selects the period and optional department scope.
type SummaryRequest struct {
	From         string  `json:"from"` // YYYY-MM-DD
	To           string  `json:"to"`   // YYYY-MM-DD
	DepartmentID *string `json:"department_id,omitempty"`
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	from, fromValid := validator.IsValidDate(r.From)
	if !fromValid {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	to, toValid := validator.IsValidDate(r.To)
	if !toValid {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if fromValid && toValid && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ReportService aggregates attendance into period summaries.
type ReportService interface {
	Summarize(ctx context.Context, req SummaryRequest) (Summary, error)
	SummarizeByDepartment(ctx context.Context, req SummaryRequest) ([]DepartmentSummary, error)
}
