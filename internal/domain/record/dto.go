package record

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/timedesk/timekeeper-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE RECORD DTOs
// ========================================

// CheckInRequest opens the day for an employee. Timestamp is optional
// RFC3339; when empty the service uses the current time.
type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Timestamp  string  `json:"timestamp,omitempty"`
	Device     *string `json:"device,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Timestamp != "" {
		if _, valid := validator.IsValidDateTime(r.Timestamp); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Timestamp  string  `json:"timestamp,omitempty"`
	Device     *string `json:"device,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Timestamp != "" {
		if _, valid := validator.IsValidDateTime(r.Timestamp); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AssignCodeRequest tags an employee's day with a catalog code. The day does
// not need a check-in: assigning a leave code to an empty day creates the
// record.
type AssignCodeRequest struct {
	EmployeeID    string          `json:"employee_id"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Code          string          `json:"code"`
	PremiumAmount decimal.Decimal `json:"premium_amount"`
	Notes         *string         `json:"notes,omitempty"`
}

func (r *AssignCodeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.PremiumAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "premium_amount",
			Message: "premium_amount must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpsertRecordRequest is the management write path: create or fix a record
// with an explicit date and status, bypassing the check-in flow.
type UpsertRecordRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"` // YYYY-MM-DD
	Status       *string `json:"status,omitempty"`
	CheckInTime  *string `json:"check_in_time,omitempty"`  // RFC3339
	CheckOutTime *string `json:"check_out_time,omitempty"` // RFC3339
	Code         *string `json:"code,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *UpsertRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, half-day, leave",
		})
	}

	if r.CheckInTime != nil {
		if _, valid := validator.IsValidDateTime(*r.CheckInTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in_time",
				Message: "check_in_time must be a valid RFC3339 datetime",
			})
		}
	}

	if r.CheckOutTime != nil {
		if _, valid := validator.IsValidDateTime(*r.CheckOutTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out_time",
				Message: "check_out_time must be a valid RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter scopes record listings to a date range, optionally narrowed to
// one employee or one department.
type ListFilter struct {
	EmployeeID   *string `json:"employee_id,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	From         string  `json:"from"` // YYYY-MM-DD
	To           string  `json:"to"`   // YYYY-MM-DD
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	from, fromValid := validator.IsValidDate(f.From)
	if !fromValid {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	to, toValid := validator.IsValidDate(f.To)
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

type RecordResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   *string  `json:"employee_name,omitempty"`
	DepartmentName *string  `json:"department_name,omitempty"`
	Date           string   `json:"date"`
	CheckInTime    *string  `json:"check_in_time,omitempty"`
	CheckInDevice  *string  `json:"check_in_device,omitempty"`
	CheckOutTime   *string  `json:"check_out_time,omitempty"`
	CheckOutDevice *string  `json:"check_out_device,omitempty"`
	Status         string   `json:"status"`
	Code           *string  `json:"code,omitempty"`
	PremiumAmount  string   `json:"premium_amount"`
	WorkHours      *float64 `json:"work_hours,omitempty"`
	Overtime       *float64 `json:"overtime,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// RecordService is the state machine over attendance records:
// NoRecord -> CheckedIn -> CheckedOut, plus code assignment and the
// management write path.
type RecordService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)
	AssignCode(ctx context.Context, req AssignCodeRequest) (RecordResponse, error)
	Upsert(ctx context.Context, req UpsertRecordRequest) (RecordResponse, error)
	Get(ctx context.Context, id string) (RecordResponse, error)
	List(ctx context.Context, filter ListFilter) ([]RecordResponse, error)
	Delete(ctx context.Context, id string) error
}
