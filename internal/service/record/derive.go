package record

import (
	"math"
	"time"

	"github.com/timedesk/timekeeper-backend-go/internal/domain/record"
)

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DeriveWorkHours converts a check-in/check-out pair into decimal hours
// rounded to two places. Breaks are not modeled; the span is the workday.
func DeriveWorkHours(checkIn, checkOut time.Time) float64 {
	return round2(checkOut.Sub(checkIn).Hours())
}

// DeriveOvertime is the hours worked beyond the standard shift, floored at
// zero. A short day is not negative overtime.
func DeriveOvertime(workHours, standardHours float64) float64 {
	overtime := round2(workHours - standardHours)
	if overtime < 0 {
		return 0
	}
	return overtime
}

// DeriveCheckInStatus classifies a check-in as present or late against the
// shift policy. The deadline itself is still on time.
func DeriveCheckInStatus(checkIn time.Time, policy record.ShiftPolicy) record.Status {
	if checkIn.After(policy.LateDeadline(record.DayOf(checkIn))) {
		return record.StatusLate
	}
	return record.StatusPresent
}
