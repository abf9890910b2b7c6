package record

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRecord is the single source of truth for one employee's day.
// At most one record exists per (EmployeeID, Date); Date is truncated to
// midnight UTC and is authoritative for month attribution even when a shift
// crosses midnight.
type AttendanceRecord struct {
	ID            string
	EmployeeID    string
	Date          time.Time // day start, UTC
	CheckIn       *Stamp
	CheckOut      *Stamp
	Status        Status
	CodeToken     *string // attendance code reference, by token identity
	PremiumAmount decimal.Decimal
	WorkHours     *float64 // derived, decimal hours rounded to 2 places
	Overtime      *float64 // derived, hours beyond the standard shift
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	EmployeeName   *string
	DepartmentName *string
}

// Stamp is one check-in or check-out event.
type Stamp struct {
	Time   time.Time
	Device *string
	Notes  *string
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
	StatusLeave   Status = "leave"
)

func Statuses() []string {
	return []string{
		string(StatusPresent),
		string(StatusAbsent),
		string(StatusLate),
		string(StatusHalfDay),
		string(StatusLeave),
	}
}

// ShiftPolicy parameterizes the derivations of the state machine. Values
// come from configuration; see config.AttendanceConfig.
type ShiftPolicy struct {
	ShiftStartHour   int
	ShiftStartMinute int
	Grace            time.Duration
	StandardHours    float64
}

// NewShiftPolicy parses a "HH:MM" shift start into a policy.
func NewShiftPolicy(shiftStart string, graceMinutes int, standardHours float64) (ShiftPolicy, error) {
	t, err := time.Parse("15:04", shiftStart)
	if err != nil {
		return ShiftPolicy{}, fmt.Errorf("invalid shift start %q: %w", shiftStart, err)
	}
	return ShiftPolicy{
		ShiftStartHour:   t.Hour(),
		ShiftStartMinute: t.Minute(),
		Grace:            time.Duration(graceMinutes) * time.Minute,
		StandardHours:    standardHours,
	}, nil
}

// LateDeadline is the last instant of day `date` at which a check-in still
// counts as on time.
func (p ShiftPolicy) LateDeadline(date time.Time) time.Time {
	shiftStart := time.Date(
		date.Year(), date.Month(), date.Day(),
		p.ShiftStartHour, p.ShiftStartMinute, 0, 0,
		date.Location(),
	)
	return shiftStart.Add(p.Grace)
}

// DayOf truncates a timestamp to the start of its calendar day.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
