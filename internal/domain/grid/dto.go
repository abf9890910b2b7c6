package grid

import (
	"context"

	"github.com/timedesk/timekeeper-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY GRID DTOs
// ========================================

// UnrecordedPolicy decides what a weekday with no attendance record shows in
// the grid: a synthetic absence, a synthetic presence, or an empty cell.
type UnrecordedPolicy string

const (
	PolicyAbsent  UnrecordedPolicy = "absent"
	PolicyPresent UnrecordedPolicy = "present"
	PolicyBlank   UnrecordedPolicy = "blank"
)

func Policies() []string {
	return []string{
		string(PolicyAbsent),
		string(PolicyPresent),
		string(PolicyBlank),
	}
}

// WeekendSymbol fills weekend cells that carry no explicit record.
const WeekendSymbol = "-"

// DayHeader describes one column of the grid.
type DayHeader struct {
	Day       int    `json:"day"`        // 1-based day of month
	Weekday   string `json:"weekday"`    // short English name, e.g. "Mon"
	IsWeekend bool   `json:"is_weekend"` // Saturday or Sunday
}

// Cell is one employee-day intersection. Symbol is what renders in the cell;
// Weight is the presence fraction the cell contributes to the row total.
type Cell struct {
	Day      int     `json:"day"`
	Symbol   string  `json:"symbol"`
	Weight   float64 `json:"weight"`
	Recorded bool    `json:"recorded"` // true when backed by a stored record
}

// Row is one employee's month.
type Row struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode string  `json:"employee_code"`
	LastName     string  `json:"last_name"`
	FirstName    string  `json:"first_name"`
	Position     *string `json:"position,omitempty"`
	Cells        []Cell  `json:"cells"`
	Total        float64 `json:"total"` // sum of present-weighted cells
}

// MonthlyGrid is the roster x calendar matrix for one month.
type MonthlyGrid struct {
	Year         int         `json:"year"`
	Month        int         `json:"month"`
	DepartmentID *string     `json:"department_id,omitempty"`
	Days         []DayHeader `json:"days"`
	Rows         []Row       `json:"rows"`
	DayTotals    []float64   `json:"day_totals"` // per-column sum over rows
	GrandTotal   float64     `json:"grand_total"`
}

// BuildRequest selects the month and scope of a grid build.
type BuildRequest struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	DepartmentID *string `json:"department_id,omitempty"`
}

func (r *BuildRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// GridService builds the monthly matrix and its spreadsheet export.
type GridService interface {
	BuildMonthlyGrid(ctx context.Context, req BuildRequest) (MonthlyGrid, error)
	ExportMonthlyGrid(ctx context.Context, req BuildRequest) ([]byte, string, error)
}
