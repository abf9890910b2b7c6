package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/timedesk/timekeeper-backend-go/internal/domain/department"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/employee"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/record"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/report"
	"github.com/timedesk/timekeeper-backend-go/internal/pkg/validator"
)

// UnassignedBucket labels the department slice for employees without a
// department.
const UnassignedBucket = "unassigned"

type service struct {
	recordRepo     record.RecordRepository
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewService(
	recordRepo record.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) report.ReportService {
	return &service{
		recordRepo:     recordRepo,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// Summarize implements report.ReportService.
func (s *service) Summarize(ctx context.Context, req report.SummaryRequest) (report.Summary, error) {
	if err := req.Validate(); err != nil {
		return report.Summary{}, err
	}

	from, _ := validator.IsValidDate(req.From)
	to, _ := validator.IsValidDate(req.To)

	employees, err := s.employeeRepo.ListActive(ctx, req.DepartmentID)
	if err != nil {
		return report.Summary{}, fmt.Errorf("list roster: %w", err)
	}

	records, err := s.recordRepo.ListByDateRange(ctx, record.RangeFilter{
		DepartmentID: req.DepartmentID,
		From:         from,
		To:           to,
	})
	if err != nil {
		return report.Summary{}, fmt.Errorf("list period records: %w", err)
	}

	return summarize(req.From, req.To, from, to, len(employees), records), nil
}

// SummarizeByDepartment implements report.ReportService. Every department
// appears even when it has no records; employees without a department land
// in the unassigned bucket.
func (s *service) SummarizeByDepartment(ctx context.Context, req report.SummaryRequest) ([]report.DepartmentSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, _ := validator.IsValidDate(req.From)
	to, _ := validator.IsValidDate(req.To)

	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}

	employees, err := s.employeeRepo.ListActive(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}

	records, err := s.recordRepo.ListByDateRange(ctx, record.RangeFilter{
		From: from,
		To:   to,
	})
	if err != nil {
		return nil, fmt.Errorf("list period records: %w", err)
	}

	departmentByEmployee := make(map[string]string, len(employees))
	employeesByDepartment := make(map[string]int)
	for _, emp := range employees {
		key := UnassignedBucket
		if emp.DepartmentID != nil {
			key = *emp.DepartmentID
		}
		departmentByEmployee[emp.ID] = key
		employeesByDepartment[key]++
	}

	recordsByDepartment := make(map[string][]record.AttendanceRecord)
	for _, rec := range records {
		key, ok := departmentByEmployee[rec.EmployeeID]
		if !ok {
			// Record of an inactive or deleted employee; not part of any
			// current roster slice.
			continue
		}
		recordsByDepartment[key] = append(recordsByDepartment[key], rec)
	}

	summaries := make([]report.DepartmentSummary, 0, len(departments)+1)
	for _, d := range departments {
		id := d.ID
		summaries = append(summaries, report.DepartmentSummary{
			DepartmentID:   &id,
			DepartmentName: d.Name,
			Summary:        summarize(req.From, req.To, from, to, employeesByDepartment[d.ID], recordsByDepartment[d.ID]),
		})
	}

	if employeesByDepartment[UnassignedBucket] > 0 {
		summaries = append(summaries, report.DepartmentSummary{
			DepartmentName: UnassignedBucket,
			Summary:        summarize(req.From, req.To, from, to, employeesByDepartment[UnassignedBucket], recordsByDepartment[UnassignedBucket]),
		})
	}

	return summaries, nil
}

// summarize folds a record set into the period summary. Hour totals and the
// average only count records that actually carry worked time (present and
// late); the attendance rate treats leave as covered time and a half-day as
// half.
func summarize(fromStr, toStr string, from, to time.Time, employeeCount int, records []record.AttendanceRecord) report.Summary {
	summary := report.Summary{
		From:          fromStr,
		To:            toStr,
		EmployeeCount: employeeCount,
		ExpectedDays:  weekdaysBetween(from, to) * employeeCount,
	}

	workedRecords := 0
	for _, rec := range records {
		switch rec.Status {
		case record.StatusPresent:
			summary.Counts.Present++
		case record.StatusAbsent:
			summary.Counts.Absent++
		case record.StatusLate:
			summary.Counts.Late++
		case record.StatusHalfDay:
			summary.Counts.HalfDay++
		case record.StatusLeave:
			summary.Counts.Leave++
		}

		// Only worked days carry hours; a day re-coded to leave or absent
		// contributes zero even when stamps were recorded before the change.
		if rec.Status == record.StatusPresent || rec.Status == record.StatusLate {
			workedRecords++
			if rec.WorkHours != nil {
				summary.TotalWorkHours += *rec.WorkHours
			}
			if rec.Overtime != nil {
				summary.TotalOvertime += *rec.Overtime
			}
		}
	}

	summary.TotalWorkHours = round2(summary.TotalWorkHours)
	summary.TotalOvertime = round2(summary.TotalOvertime)

	if workedRecords > 0 {
		summary.AverageWorkHours = round2(summary.TotalWorkHours / float64(workedRecords))
	}

	if summary.ExpectedDays > 0 {
		covered := float64(summary.Counts.Present+summary.Counts.Late+summary.Counts.Leave) +
			0.5*float64(summary.Counts.HalfDay)
		summary.AttendanceRate = round1(covered / float64(summary.ExpectedDays) * 100)
	}

	return summary
}

// weekdaysBetween counts Monday-Friday days in [from, to] inclusive.
func weekdaysBetween(from, to time.Time) int {
	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
