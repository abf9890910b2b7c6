package code

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/code"
	"github.com/timedesk/timekeeper-backend-go/internal/fixtures"
	"github.com/timedesk/timekeeper-backend-go/internal/pkg/database"
	"github.com/timedesk/timekeeper-backend-go/internal/repository/postgresql"
)

type service struct {
	db       *database.DB
	codeRepo code.CodeRepository
}

func NewService(db *database.DB, codeRepo code.CodeRepository) code.CodeService {
	return &service{db: db, codeRepo: codeRepo}
}

// Create implements code.CodeService.
func (s *service) Create(ctx context.Context, req code.CreateCodeRequest) (code.CodeResponse, error) {
	if err := req.Validate(); err != nil {
		return code.CodeResponse{}, err
	}

	c := code.AttendanceCode{
		ID:            uuid.NewString(),
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		Category:      code.Category(req.Category),
		PaymentImpact: code.PaymentImpact(req.PaymentImpact),
		DayFraction:   req.DayFraction,
		Color:         req.Color,
		Influencer:    req.Influencer,
		IsActive:      true,
	}

	created, err := s.codeRepo.Create(ctx, c)
	if err != nil {
		return code.CodeResponse{}, fmt.Errorf("create attendance code: %w", err)
	}

	return toCodeResponse(created), nil
}

// Update implements code.CodeService.
func (s *service) Update(ctx context.Context, req code.UpdateCodeRequest) (code.CodeResponse, error) {
	if err := req.Validate(); err != nil {
		return code.CodeResponse{}, err
	}

	token := strings.ToUpper(strings.TrimSpace(req.Code))

	existing, err := s.codeRepo.GetByCode(ctx, token)
	if err != nil {
		return code.CodeResponse{}, fmt.Errorf("lookup attendance code: %w", err)
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.Category != nil {
		existing.Category = code.Category(*req.Category)
	}
	if req.PaymentImpact != nil {
		existing.PaymentImpact = code.PaymentImpact(*req.PaymentImpact)
	}
	if req.DayFraction != nil {
		existing.DayFraction = *req.DayFraction
	}
	if req.Color != nil {
		existing.Color = req.Color
	}
	if req.Influencer != nil {
		existing.Influencer = *req.Influencer
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.codeRepo.Update(ctx, existing); err != nil {
		return code.CodeResponse{}, fmt.Errorf("update attendance code: %w", err)
	}
	existing.UpdatedAt = time.Now().UTC()

	return toCodeResponse(existing), nil
}

// Lookup implements code.CodeService. It resolves inactive codes too, so
// historical records never lose their meaning; new assignments must check
// IsActive themselves.
func (s *service) Lookup(ctx context.Context, token string) (code.AttendanceCode, error) {
	return s.codeRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(token)))
}

// ListActive implements code.CodeService.
func (s *service) ListActive(ctx context.Context) ([]code.CodeResponse, error) {
	codes, err := s.codeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active attendance codes: %w", err)
	}
	return toCodeResponses(codes), nil
}

// List implements code.CodeService.
func (s *service) List(ctx context.Context) ([]code.CodeResponse, error) {
	codes, err := s.codeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attendance codes: %w", err)
	}
	return toCodeResponses(codes), nil
}

// Deactivate implements code.CodeService. Deactivation hides the code from
// new assignments; existing records keep referencing it.
func (s *service) Deactivate(ctx context.Context, token string) error {
	existing, err := s.codeRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(token)))
	if err != nil {
		return fmt.Errorf("lookup attendance code: %w", err)
	}

	if !existing.IsActive {
		return nil // Already inactive
	}

	existing.IsActive = false
	if err := s.codeRepo.Update(ctx, existing); err != nil {
		return fmt.Errorf("deactivate attendance code: %w", err)
	}

	return nil
}

// SeedDefaults implements code.CodeService. It inserts the default catalog in
// a single transaction, skipping tokens that already exist, and returns the
// number of codes inserted. Safe to run on every startup.
func (s *service) SeedDefaults(ctx context.Context) (int, error) {
	seeded := 0
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		for _, c := range fixtures.GetDefaultAttendanceCodes() {
			_, err := s.codeRepo.GetByCode(ctx, c.Code)
			if err == nil {
				continue
			}
			if !errors.Is(err, code.ErrCodeNotFound) {
				return fmt.Errorf("check attendance code %s: %w", c.Code, err)
			}

			if _, err := s.codeRepo.Create(ctx, c); err != nil {
				return fmt.Errorf("seed attendance code %s: %w", c.Code, err)
			}
			seeded++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return seeded, nil
}

func toCodeResponse(c code.AttendanceCode) code.CodeResponse {
	return code.CodeResponse{
		ID:            c.ID,
		Code:          c.Code,
		Name:          c.Name,
		Description:   c.Description,
		Category:      string(c.Category),
		PaymentImpact: string(c.PaymentImpact),
		DayFraction:   c.DayFraction,
		Color:         c.Color,
		Influencer:    c.Influencer,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
}

func toCodeResponses(codes []code.AttendanceCode) []code.CodeResponse {
	responses := make([]code.CodeResponse, 0, len(codes))
	for _, c := range codes {
		responses = append(responses, toCodeResponse(c))
	}
	return responses
}
