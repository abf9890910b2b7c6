package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/department"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/employee"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/record"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/report"
)

// ========================================
// FAKES
// ========================================

type fakeRecordRepo struct {
	records []record.AttendanceRecord
}

func (f *fakeRecordRepo) Create(_ context.Context, rec record.AttendanceRecord) (record.AttendanceRecord, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeRecordRepo) GetByID(context.Context, string) (record.AttendanceRecord, error) {
	return record.AttendanceRecord{}, record.ErrRecordNotFound
}

func (f *fakeRecordRepo) GetByEmployeeAndDate(context.Context, string, time.Time) (*record.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeRecordRepo) Update(context.Context, record.AttendanceRecord) error { return nil }

func (f *fakeRecordRepo) ListByDateRange(_ context.Context, filter record.RangeFilter) ([]record.AttendanceRecord, error) {
	var out []record.AttendanceRecord
	for _, rec := range f.records {
		if !rec.Date.Before(filter.From) && !rec.Date.After(filter.To) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) Delete(context.Context, string) error { return nil }

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context, departmentID *string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if departmentID != nil && (e.DepartmentID == nil || *e.DepartmentID != *departmentID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type fakeDepartmentRepo struct {
	departments []department.DepartmentWithEmployeeCount
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id string) (department.Department, error) {
	for _, d := range f.departments {
		if d.ID == id {
			return d.Department, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (f *fakeDepartmentRepo) List(context.Context) ([]department.DepartmentWithEmployeeCount, error) {
	return f.departments, nil
}

// ========================================
// TEST SETUP
// ========================================

// June 1-26 2026 holds exactly 20 weekdays.
const (
	periodFrom = "2026-06-01"
	periodTo   = "2026-06-26"
)

func weekdayDates() []time.Time {
	var out []time.Time
	for day := 1; day <= 26; day++ {
		date := time.Date(2026, 6, day, 0, 0, 0, 0, time.UTC)
		if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
			out = append(out, date)
		}
	}
	return out
}

func presentRecord(employeeID string, date time.Time, workHours float64) record.AttendanceRecord {
	wh := workHours
	return record.AttendanceRecord{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       date,
		Status:     record.StatusPresent,
		WorkHours:  &wh,
	}
}

// ========================================
// TESTS
// ========================================

func TestSummarize_AttendanceRate(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{}
	records := &fakeRecordRepo{}

	// Ten active employees; eight of them present every weekday.
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("emp-%d", i)
		emps.employees = append(emps.employees, employee.Employee{
			ID: id, EmployeeCode: fmt.Sprintf("1000-%04d", i), IsActive: true,
		})
		if i < 8 {
			for _, date := range weekdayDates() {
				records.records = append(records.records, presentRecord(id, date, 8))
			}
		}
	}

	svc := NewService(records, emps, &fakeDepartmentRepo{})

	summary, err := svc.Summarize(context.Background(), report.SummaryRequest{From: periodFrom, To: periodTo})
	require.NoError(t, err)

	assert.Equal(t, 10, summary.EmployeeCount)
	assert.Equal(t, 200, summary.ExpectedDays)
	assert.Equal(t, 160, summary.Counts.Present)
	assert.Equal(t, 80.0, summary.AttendanceRate)
	assert.Equal(t, 8.0, summary.AverageWorkHours)
	assert.Equal(t, 1280.0, summary.TotalWorkHours)
}

func TestSummarize_AverageOnlyOverWorkedDays(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", EmployeeCode: "1000-0001", IsActive: true},
	}}

	day := func(d int) time.Time { return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC) }
	nine := 9.0
	records := &fakeRecordRepo{records: []record.AttendanceRecord{
		presentRecord("emp-1", day(1), 8),
		{ID: uuid.NewString(), EmployeeID: "emp-1", Date: day(2), Status: record.StatusLate, WorkHours: &nine},
		// Leave and absence days carry no worked hours and stay out of the average.
		{ID: uuid.NewString(), EmployeeID: "emp-1", Date: day(3), Status: record.StatusLeave},
		{ID: uuid.NewString(), EmployeeID: "emp-1", Date: day(4), Status: record.StatusAbsent},
	}}

	svc := NewService(records, emps, &fakeDepartmentRepo{})

	summary, err := svc.Summarize(context.Background(), report.SummaryRequest{From: "2026-06-01", To: "2026-06-05"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Counts.Present)
	assert.Equal(t, 1, summary.Counts.Late)
	assert.Equal(t, 1, summary.Counts.Leave)
	assert.Equal(t, 1, summary.Counts.Absent)
	assert.Equal(t, 17.0, summary.TotalWorkHours)
	assert.Equal(t, 8.5, summary.AverageWorkHours)

	// 5 weekdays expected; present + late + leave cover 3 of them.
	assert.Equal(t, 5, summary.ExpectedDays)
	assert.Equal(t, 60.0, summary.AttendanceRate)
}

func TestSummarize_RecodedLeaveDayCarriesNoHours(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", EmployeeCode: "1000-0001", IsActive: true},
	}}

	day := func(d int) time.Time { return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC) }
	eight := 8.0
	one := 1.0
	records := &fakeRecordRepo{records: []record.AttendanceRecord{
		presentRecord("emp-1", day(1), 8),
		// Checked in and out, then re-coded to sick leave: the stamps and
		// derived hours stay on the record but must not count as worked time.
		{
			ID:         uuid.NewString(),
			EmployeeID: "emp-1",
			Date:       day(2),
			Status:     record.StatusLeave,
			WorkHours:  &eight,
			Overtime:   &one,
		},
	}}

	svc := NewService(records, emps, &fakeDepartmentRepo{})

	summary, err := svc.Summarize(context.Background(), report.SummaryRequest{From: "2026-06-01", To: "2026-06-02"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Counts.Present)
	assert.Equal(t, 1, summary.Counts.Leave)
	assert.Equal(t, 8.0, summary.TotalWorkHours)
	assert.Equal(t, 8.0, summary.AverageWorkHours)
	assert.Equal(t, 0.0, summary.TotalOvertime)
}

func TestSummarizeByDepartment_UnassignedBucket(t *testing.T) {
	t.Parallel()

	deptID := uuid.NewString()
	departments := &fakeDepartmentRepo{departments: []department.DepartmentWithEmployeeCount{
		{Department: department.Department{ID: deptID, Name: "Engineering"}, EmployeeCount: 1},
	}}

	emps := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", EmployeeCode: "1000-0001", DepartmentID: &deptID, IsActive: true},
		{ID: "emp-2", EmployeeCode: "1000-0002", IsActive: true}, // no department
	}}

	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	records := &fakeRecordRepo{records: []record.AttendanceRecord{
		presentRecord("emp-1", day, 8),
		presentRecord("emp-2", day, 8),
	}}

	svc := NewService(records, emps, departments)

	summaries, err := svc.SummarizeByDepartment(context.Background(), report.SummaryRequest{From: "2026-06-01", To: "2026-06-01"})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "Engineering", summaries[0].DepartmentName)
	require.NotNil(t, summaries[0].DepartmentID)
	assert.Equal(t, 1, summaries[0].Counts.Present)
	assert.Equal(t, 100.0, summaries[0].AttendanceRate)

	assert.Equal(t, UnassignedBucket, summaries[1].DepartmentName)
	assert.Nil(t, summaries[1].DepartmentID)
	assert.Equal(t, 1, summaries[1].Counts.Present)
}

func TestSummarize_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRecordRepo{}, &fakeEmployeeRepo{}, &fakeDepartmentRepo{})

	_, err := svc.Summarize(context.Background(), report.SummaryRequest{From: "2026-06-26", To: "2026-06-01"})
	assert.Error(t, err)

	_, err = svc.Summarize(context.Background(), report.SummaryRequest{From: "bad", To: "2026-06-01"})
	assert.Error(t, err)
}
