package code

import (
	"context"
	"strings"

	"github.com/timedesk/timekeeper-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE CODE DTOs
// ========================================

type CreateCodeRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	Category      string  `json:"category"`
	PaymentImpact string  `json:"payment_impact"`
	DayFraction   float64 `json:"day_fraction"`
	Color         *string `json:"color,omitempty"`
	Influencer    bool    `json:"influencer"`
}

func (r *CreateCodeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if !validator.IsValidCodeToken(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 1-10 characters of A-Z, 0-9, '/' or '-'",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.Category, Categories()) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: " + strings.Join(Categories(), ", "),
		})
	}

	if !validator.IsInSlice(r.PaymentImpact, PaymentImpacts()) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_impact",
			Message: "payment_impact must be one of: " + strings.Join(PaymentImpacts(), ", "),
		})
	}

	if r.DayFraction == 0 {
		r.DayFraction = 1 // Default full day
	}
	if r.DayFraction != 1 && r.DayFraction != 0.5 && r.DayFraction != 0.25 {
		errs = append(errs, validator.ValidationError{
			Field:   "day_fraction",
			Message: "day_fraction must be one of: 1, 0.5, 0.25",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateCodeRequest updates the mutable fields of a catalog entry. The token
// itself is immutable once referenced, so it is only used for lookup here.
type UpdateCodeRequest struct {
	Code          string   `json:"-"`
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Category      *string  `json:"category,omitempty"`
	PaymentImpact *string  `json:"payment_impact,omitempty"`
	DayFraction   *float64 `json:"day_fraction,omitempty"`
	Color         *string  `json:"color,omitempty"`
	Influencer    *bool    `json:"influencer,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

func (r *UpdateCodeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if r.Category != nil && !validator.IsInSlice(*r.Category, Categories()) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: " + strings.Join(Categories(), ", "),
		})
	}

	if r.PaymentImpact != nil && !validator.IsInSlice(*r.PaymentImpact, PaymentImpacts()) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_impact",
			Message: "payment_impact must be one of: " + strings.Join(PaymentImpacts(), ", "),
		})
	}

	if r.DayFraction != nil && *r.DayFraction != 1 && *r.DayFraction != 0.5 && *r.DayFraction != 0.25 {
		errs = append(errs, validator.ValidationError{
			Field:   "day_fraction",
			Message: "day_fraction must be one of: 1, 0.5, 0.25",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CodeResponse struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	Category      string  `json:"category"`
	PaymentImpact string  `json:"payment_impact"`
	DayFraction   float64 `json:"day_fraction"`
	Color         *string `json:"color,omitempty"`
	Influencer    bool    `json:"influencer"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// CodeService is the catalog contract consumed by handlers and by the record
// state machine for code lookups.
type CodeService interface {
	Create(ctx context.Context, req CreateCodeRequest) (CodeResponse, error)
	Update(ctx context.Context, req UpdateCodeRequest) (CodeResponse, error)
	Lookup(ctx context.Context, token string) (AttendanceCode, error)
	ListActive(ctx context.Context) ([]CodeResponse, error)
	List(ctx context.Context) ([]CodeResponse, error)
	Deactivate(ctx context.Context, token string) error
	SeedDefaults(ctx context.Context) (int, error)
}
