package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/record"
	"github.com/timedesk/timekeeper-backend-go/internal/pkg/database"
)

type recordRepository struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) record.RecordRepository {
	return &recordRepository{db: db}
}

const recordColumns = `
	r.id, r.employee_id, r.date,
	r.check_in_time, r.check_in_device, r.check_in_notes,
	r.check_out_time, r.check_out_device, r.check_out_notes,
	r.status, r.code, r.premium_amount, r.work_hours, r.overtime, r.notes,
	r.created_at, r.updated_at
`

func scanRecord(row pgx.Row, withEmployee bool) (record.AttendanceRecord, error) {
	var rec record.AttendanceRecord
	var checkInTime, checkOutTime *time.Time
	var checkInDevice, checkInNotes, checkOutDevice, checkOutNotes *string

	dest := []interface{}{
		&rec.ID, &rec.EmployeeID, &rec.Date,
		&checkInTime, &checkInDevice, &checkInNotes,
		&checkOutTime, &checkOutDevice, &checkOutNotes,
		&rec.Status, &rec.CodeToken, &rec.PremiumAmount, &rec.WorkHours, &rec.Overtime, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &rec.EmployeeName, &rec.DepartmentName)
	}

	if err := row.Scan(dest...); err != nil {
		return record.AttendanceRecord{}, err
	}

	if checkInTime != nil {
		rec.CheckIn = &record.Stamp{Time: *checkInTime, Device: checkInDevice, Notes: checkInNotes}
	}
	if checkOutTime != nil {
		rec.CheckOut = &record.Stamp{Time: *checkOutTime, Device: checkOutDevice, Notes: checkOutNotes}
	}

	return rec, nil
}

// Create implements record.RecordRepository. The unique index on
// (employee_id, date) is the arbiter for concurrent check-ins.
func (r *recordRepository) Create(ctx context.Context, rec record.AttendanceRecord) (record.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date,
			check_in_time, check_in_device, check_in_notes,
			check_out_time, check_out_device, check_out_notes,
			status, code, premium_amount, work_hours, overtime, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING created_at, updated_at
	`

	var checkInTime, checkOutTime *time.Time
	var checkInDevice, checkInNotes, checkOutDevice, checkOutNotes *string
	if rec.CheckIn != nil {
		checkInTime, checkInDevice, checkInNotes = &rec.CheckIn.Time, rec.CheckIn.Device, rec.CheckIn.Notes
	}
	if rec.CheckOut != nil {
		checkOutTime, checkOutDevice, checkOutNotes = &rec.CheckOut.Time, rec.CheckOut.Device, rec.CheckOut.Notes
	}

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.Date,
		checkInTime,
		checkInDevice,
		checkInNotes,
		checkOutTime,
		checkOutDevice,
		checkOutNotes,
		rec.Status,
		rec.CodeToken,
		rec.PremiumAmount,
		rec.WorkHours,
		rec.Overtime,
		rec.Notes,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return record.AttendanceRecord{}, record.ErrDuplicateRecord
		}
		return record.AttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByID implements record.RecordRepository.
func (r *recordRepository) GetByID(ctx context.Context, id string) (record.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `,
			e.last_name || ' ' || e.first_name AS employee_name,
			d.name AS department_name
		FROM attendance_records r
		LEFT JOIN employees e ON e.id = r.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE r.id = $1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return record.AttendanceRecord{}, record.ErrRecordNotFound
		}
		return record.AttendanceRecord{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements record.RecordRepository.
func (r *recordRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*record.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records r
		WHERE r.employee_id = $1
		  AND r.date = $2
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No record for this day yet
		}
		return nil, fmt.Errorf("failed to get attendance record by employee and date: %w", err)
	}

	return &rec, nil
}

// Update implements record.RecordRepository.
func (r *recordRepository) Update(ctx context.Context, rec record.AttendanceRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records SET
			check_in_time = $1, check_in_device = $2, check_in_notes = $3,
			check_out_time = $4, check_out_device = $5, check_out_notes = $6,
			status = $7, code = $8, premium_amount = $9,
			work_hours = $10, overtime = $11, notes = $12,
			updated_at = NOW()
		WHERE id = $13
	`

	var checkInTime, checkOutTime *time.Time
	var checkInDevice, checkInNotes, checkOutDevice, checkOutNotes *string
	if rec.CheckIn != nil {
		checkInTime, checkInDevice, checkInNotes = &rec.CheckIn.Time, rec.CheckIn.Device, rec.CheckIn.Notes
	}
	if rec.CheckOut != nil {
		checkOutTime, checkOutDevice, checkOutNotes = &rec.CheckOut.Time, rec.CheckOut.Device, rec.CheckOut.Notes
	}

	tag, err := q.Exec(ctx, query,
		checkInTime, checkInDevice, checkInNotes,
		checkOutTime, checkOutDevice, checkOutNotes,
		rec.Status, rec.CodeToken, rec.PremiumAmount,
		rec.WorkHours, rec.Overtime, rec.Notes,
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return record.ErrRecordNotFound
	}

	return nil
}

// ListByDateRange implements record.RecordRepository.
func (r *recordRepository) ListByDateRange(ctx context.Context, filter record.RangeFilter) ([]record.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `,
			e.last_name || ' ' || e.first_name AS employee_name,
			d.name AS department_name
		FROM attendance_records r
		LEFT JOIN employees e ON e.id = r.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE r.date >= $1 AND r.date <= $2
	`
	args := []interface{}{filter.From, filter.To}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND r.employee_id = $%d", len(args))
	}
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		query += fmt.Sprintf(" AND e.department_id = $%d", len(args))
	}

	query += " ORDER BY r.date, e.last_name, e.first_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []record.AttendanceRecord
	for rows.Next() {
		rec, err := scanRecord(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// Delete implements record.RecordRepository.
func (r *recordRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return record.ErrRecordNotFound
	}

	return nil
}
