package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/code"
	"github.com/timedesk/timekeeper-backend-go/internal/pkg/validator"
)

func TestGetDefaultAttendanceCodes(t *testing.T) {
	t.Parallel()

	codes := GetDefaultAttendanceCodes()

	assert.Len(t, codes, 66)

	seen := make(map[string]bool, len(codes))
	influencers := 0
	for _, c := range codes {
		assert.False(t, seen[c.Code], "duplicate token %q", c.Code)
		seen[c.Code] = true

		assert.True(t, validator.IsValidCodeToken(c.Code), "invalid token %q", c.Code)
		assert.NotEmpty(t, c.Name, "code %q has no name", c.Code)
		assert.Contains(t, code.Categories(), string(c.Category), "code %q category", c.Code)
		assert.Contains(t, code.PaymentImpacts(), string(c.PaymentImpact), "code %q payment impact", c.Code)
		assert.Contains(t, []float64{1, 0.5, 0.25}, c.DayFraction, "code %q day fraction", c.Code)
		assert.True(t, c.IsActive, "code %q should seed active", c.Code)

		if c.Influencer {
			influencers++
		}
	}

	// Every base code carries exactly one influencer twin.
	assert.Equal(t, len(codes)/2, influencers)
}

func TestDefaultAttendanceCodesPresenceWeights(t *testing.T) {
	t.Parallel()

	byToken := make(map[string]code.AttendanceCode)
	for _, c := range GetDefaultAttendanceCodes() {
		byToken[c.Code] = c
	}

	assert.Equal(t, 1.0, byToken["P"].PresenceWeight())
	assert.Equal(t, 0.5, byToken["P/2"].PresenceWeight())
	assert.Equal(t, 0.25, byToken["P/4"].PresenceWeight())

	// Non-presence categories contribute nothing to grid totals.
	assert.Equal(t, 0.0, byToken["CM"].PresenceWeight())
	assert.Equal(t, 0.0, byToken["A"].PresenceWeight())
	assert.Equal(t, 0.0, byToken["MIS"].PresenceWeight())
}
