package fixtures

import (
	"github.com/google/uuid"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/code"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

// ==========================================
// DEFAULT ATTENDANCE CODES
// ==========================================

type codeSeed struct {
	Code          string
	Name          string
	Description   *string
	Category      code.Category
	PaymentImpact code.PaymentImpact
	DayFraction   float64
	Color         *string
}

// baseCodeSeeds is the payroll catalog the tracker ships with. Every entry
// also gets an "-I" influencer twin, which pays out through a different
// payroll channel but tracks attendance identically.
func baseCodeSeeds() []codeSeed {
	return []codeSeed{
		// Presence
		{Code: "P", Name: "Present", Category: code.CategoryPresent, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1, Color: strPtr("#2E7D32")},
		{Code: "P/2", Name: "Present (half day)", Category: code.CategoryPresent, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 0.5, Color: strPtr("#66BB6A")},
		{Code: "P/4", Name: "Present (quarter day)", Category: code.CategoryPresent, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 0.25, Color: strPtr("#A5D6A7")},
		{Code: "TEL", Name: "Remote work", Category: code.CategoryPresent, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1, Color: strPtr("#1565C0")},
		{Code: "TEL/2", Name: "Remote work (half day)", Category: code.CategoryPresent, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 0.5},
		{Code: "FOR", Name: "Training day", Category: code.CategoryPresent, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1},
		{Code: "NUI", Name: "Night shift", Description: strPtr("Worked night shift, premium rate"), Category: code.CategoryPresent, PaymentImpact: code.PaymentImpactPremium, DayFraction: 1},
		{Code: "JT", Name: "Worked public holiday", Description: strPtr("Presence on a public holiday, premium rate"), Category: code.CategoryPresent, PaymentImpact: code.PaymentImpactPremium, DayFraction: 1},

		// Missions and off-site assignments
		{Code: "MIS", Name: "Mission", Category: code.CategoryMission, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1, Color: strPtr("#6A1B9A")},
		{Code: "MI/2", Name: "Mission (half day)", Category: code.CategoryMission, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 0.5},
		{Code: "DEL", Name: "Delegation", Category: code.CategoryMission, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1},
		{Code: "SEM", Name: "Seminar", Category: code.CategoryMission, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1},

		// Absences
		{Code: "A", Name: "Absent", Category: code.CategoryAbsent, PaymentImpact: code.PaymentImpactNoPay, DayFraction: 1, Color: strPtr("#C62828")},
		{Code: "AJ", Name: "Justified absence", Category: code.CategoryAbsent, PaymentImpact: code.PaymentImpactPartialPay, DayFraction: 1},
		{Code: "ANJ", Name: "Unjustified absence", Category: code.CategoryAbsent, PaymentImpact: code.PaymentImpactNoPay, DayFraction: 1},

		// Leaves
		{Code: "CM", Name: "Sick leave", Category: code.CategoryLeave, PaymentImpact: code.PaymentImpactPartialPay, DayFraction: 1, Color: strPtr("#EF6C00")},
		{Code: "CA", Name: "Annual leave", Category: code.CategoryLeave, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1, Color: strPtr("#0277BD")},
		{Code: "CP", Name: "Paid leave", Category: code.CategoryLeave, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1},
		{Code: "RTT", Name: "Compensatory rest", Category: code.CategoryLeave, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1},
		{Code: "CSS", Name: "Unpaid leave", Category: code.CategoryLeave, PaymentImpact: code.PaymentImpactNoPay, DayFraction: 1},
		{Code: "CE", Name: "Family event leave", Category: code.CategoryLeave, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1},
		{Code: "MAT", Name: "Maternity leave", Category: code.CategoryLeave, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1},
		{Code: "PAT", Name: "Paternity leave", Category: code.CategoryLeave, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1},
		{Code: "AT", Name: "Work accident leave", Category: code.CategoryLeave, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1},
		{Code: "MP", Name: "Occupational illness", Category: code.CategoryLeave, PaymentImpact: code.PaymentImpactPartialPay, DayFraction: 1},
		{Code: "CF", Name: "Training leave", Category: code.CategoryLeave, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1},
		{Code: "GRE", Name: "Strike", Category: code.CategoryLeave, PaymentImpact: code.PaymentImpactNoPay, DayFraction: 1},
		{Code: "REC", Name: "Recovery day", Category: code.CategoryLeave, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1},

		// Holidays
		{Code: "F", Name: "Public holiday", Category: code.CategoryHoliday, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1, Color: strPtr("#546E7A")},
		{Code: "FER", Name: "Company holiday", Category: code.CategoryHoliday, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1},
		{Code: "PON", Name: "Bridge day", Category: code.CategoryHoliday, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1},

		// Other
		{Code: "SUS", Name: "Suspension", Category: code.CategoryOther, PaymentImpact: code.PaymentImpactNoPay, DayFraction: 1},
		{Code: "EXM", Name: "Medical examination", Category: code.CategoryOther, PaymentImpact: code.PaymentImpactFullPay, DayFraction: 1},
	}
}

// GetDefaultAttendanceCodes returns the seed catalog: every base code plus
// its influencer variant, 66 entries in total.
func GetDefaultAttendanceCodes() []code.AttendanceCode {
	seeds := baseCodeSeeds()
	codes := make([]code.AttendanceCode, 0, len(seeds)*2)

	for _, seed := range seeds {
		codes = append(codes, code.AttendanceCode{
			ID:            uuid.NewString(),
			Code:          seed.Code,
			Name:          seed.Name,
			Description:   seed.Description,
			Category:      seed.Category,
			PaymentImpact: seed.PaymentImpact,
			DayFraction:   seed.DayFraction,
			Color:         seed.Color,
			IsActive:      true,
		})
		codes = append(codes, code.AttendanceCode{
			ID:            uuid.NewString(),
			Code:          seed.Code + "-I",
			Name:          seed.Name + " (influencer)",
			Description:   seed.Description,
			Category:      seed.Category,
			PaymentImpact: seed.PaymentImpact,
			DayFraction:   seed.DayFraction,
			Color:         seed.Color,
			Influencer:    true,
			IsActive:      true,
		})
	}

	return codes
}
