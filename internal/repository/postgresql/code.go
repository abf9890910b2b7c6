package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/code"
	"github.com/timedesk/timekeeper-backend-go/internal/pkg/database"
)

type codeRepository struct {
	db *database.DB
}

func NewCodeRepository(db *database.DB) code.CodeRepository {
	return &codeRepository{db: db}
}

const codeColumns = `
	id, code, name, description, category, payment_impact,
	day_fraction, color, influencer, is_active, created_at, updated_at
`

func scanCode(row pgx.Row) (code.AttendanceCode, error) {
	var c code.AttendanceCode
	err := row.Scan(
		&c.ID, &c.Code, &c.Name, &c.Description, &c.Category, &c.PaymentImpact,
		&c.DayFraction, &c.Color, &c.Influencer, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements code.CodeRepository.
func (r *codeRepository) Create(ctx context.Context, c code.AttendanceCode) (code.AttendanceCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_codes (
			id, code, name, description, category, payment_impact,
			day_fraction, color, influencer, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.ID,
		c.Code,
		c.Name,
		c.Description,
		c.Category,
		c.PaymentImpact,
		c.DayFraction,
		c.Color,
		c.Influencer,
		c.IsActive,
	).Scan(&c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return code.AttendanceCode{}, code.ErrDuplicateCode
		}
		return code.AttendanceCode{}, fmt.Errorf("failed to create attendance code: %w", err)
	}

	return c, nil
}

// GetByCode implements code.CodeRepository. Inactive codes still resolve so
// historical records keep their meaning.
func (r *codeRepository) GetByCode(ctx context.Context, token string) (code.AttendanceCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + codeColumns + `
		FROM attendance_codes
		WHERE code = $1
	`

	c, err := scanCode(q.QueryRow(ctx, query, token))
	if err != nil {
		if err == pgx.ErrNoRows {
			return code.AttendanceCode{}, code.ErrCodeNotFound
		}
		return code.AttendanceCode{}, fmt.Errorf("failed to get attendance code: %w", err)
	}

	return c, nil
}

// List implements code.CodeRepository.
func (r *codeRepository) List(ctx context.Context) ([]code.AttendanceCode, error) {
	return r.list(ctx, false)
}

// ListActive implements code.CodeRepository.
func (r *codeRepository) ListActive(ctx context.Context) ([]code.AttendanceCode, error) {
	return r.list(ctx, true)
}

func (r *codeRepository) list(ctx context.Context, activeOnly bool) ([]code.AttendanceCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + codeColumns + `
		FROM attendance_codes
	`
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY code"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance codes: %w", err)
	}
	defer rows.Close()

	var codes []code.AttendanceCode
	for rows.Next() {
		c, err := scanCode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance code: %w", err)
		}
		codes = append(codes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance codes: %w", err)
	}

	return codes, nil
}

// Update implements code.CodeRepository.
func (r *codeRepository) Update(ctx context.Context, c code.AttendanceCode) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_codes SET
			name = $1, description = $2, category = $3, payment_impact = $4,
			day_fraction = $5, color = $6, influencer = $7, is_active = $8,
			updated_at = NOW()
		WHERE code = $9
	`

	tag, err := q.Exec(ctx, query,
		c.Name, c.Description, c.Category, c.PaymentImpact,
		c.DayFraction, c.Color, c.Influencer, c.IsActive,
		c.Code,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance code: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return code.ErrCodeNotFound
	}

	return nil
}
