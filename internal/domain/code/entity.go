package code

import (
	"time"
)

// AttendanceCode is one entry of the payroll attendance taxonomy. Codes are
// read-mostly: they are seeded or administered out of band and referenced by
// attendance records. A code is never hard-deleted while referenced; it is
// soft-deactivated via IsActive instead.
type AttendanceCode struct {
	ID            string
	Code          string // short unique token, <= 10 chars
	Name          string
	Description   *string
	Category      Category
	PaymentImpact PaymentImpact
	DayFraction   float64 // 1, 0.5 or 0.25 (full / half / quarter day variant)
	Color         *string // display hint only
	Influencer    bool    // marks the specially-tracked cohort variant
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Category string

const (
	CategoryPresent Category = "present"
	CategoryAbsent  Category = "absent"
	CategoryLeave   Category = "leave"
	CategoryHoliday Category = "holiday"
	CategoryMission Category = "mission"
	CategoryOther   Category = "other"
)

func Categories() []string {
	return []string{
		string(CategoryPresent),
		string(CategoryAbsent),
		string(CategoryLeave),
		string(CategoryHoliday),
		string(CategoryMission),
		string(CategoryOther),
	}
}

type PaymentImpact string

const (
	PaymentImpactFullPay    PaymentImpact = "full-pay"
	PaymentImpactPartialPay PaymentImpact = "partial-pay"
	PaymentImpactNoPay      PaymentImpact = "no-pay"
	PaymentImpactPremium    PaymentImpact = "premium"
)

func PaymentImpacts() []string {
	return []string{
		string(PaymentImpactFullPay),
		string(PaymentImpactPartialPay),
		string(PaymentImpactNoPay),
		string(PaymentImpactPremium),
	}
}

// PresenceWeight is the code's contribution to a "days present" total.
// Only present-category codes count; the day fraction distinguishes full,
// half and quarter day variants.
func (c AttendanceCode) PresenceWeight() float64 {
	if c.Category != CategoryPresent {
		return 0
	}
	return c.DayFraction
}
