package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/employee"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/grid"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/record"
)

// AbsenceJobs materializes the unrecorded-weekday policy: when the policy is
// "absent", yesterday's weekday gaps become stored absence records so payroll
// reads the same answer the grid shows.
type AbsenceJobs struct {
	recordRepo   record.RecordRepository
	employeeRepo employee.EmployeeRepository
	policy       grid.UnrecordedPolicy
}

func NewAbsenceJobs(
	recordRepo record.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	policy grid.UnrecordedPolicy,
) *AbsenceJobs {
	return &AbsenceJobs{
		recordRepo:   recordRepo,
		employeeRepo: employeeRepo,
		policy:       policy,
	}
}

func (j *AbsenceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees creates an absence record for every active employee who
// has no record for yesterday, when yesterday was a weekday. Existing records
// are never touched.
func (j *AbsenceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	return j.markAbsentFor(ctx, record.DayOf(time.Now().UTC().AddDate(0, 0, -1)))
}

func (j *AbsenceJobs) markAbsentFor(ctx context.Context, day time.Time) error {
	if j.policy != grid.PolicyAbsent {
		return nil
	}

	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job", "date", day.Format("2006-01-02"))

	employees, err := j.employeeRepo.ListActive(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	marked := 0
	for _, emp := range employees {
		existing, err := j.recordRepo.GetByEmployeeAndDate(ctx, emp.ID, day)
		if err != nil {
			slog.Error("Cron: Failed to check existing record",
				"employee_id", emp.ID,
				"error", err)
			continue
		}
		if existing != nil {
			continue
		}

		_, err = j.recordRepo.Create(ctx, record.AttendanceRecord{
			ID:         uuid.NewString(),
			EmployeeID: emp.ID,
			Date:       day,
			Status:     record.StatusAbsent,
		})
		if err != nil {
			// A concurrent writer beat us to the day; that record wins.
			if errors.Is(err, record.ErrDuplicateRecord) {
				continue
			}
			slog.Error("Cron: Failed to create absence record",
				"employee_id", emp.ID,
				"error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: Marked absent employees", "count", marked)
	return nil
}
