package grid

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/code"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/employee"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/grid"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/record"
	"github.com/timedesk/timekeeper-backend-go/internal/fixtures"
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

func (f *fakeEmployeeRepo) ListActive(context.Context, *string) ([]employee.Employee, error) {
	return f.employees, nil
}

type fakeCodeRepo struct {
	codes map[string]code.AttendanceCode
}

func newFakeCodeRepo() *fakeCodeRepo {
	f := &fakeCodeRepo{codes: make(map[string]code.AttendanceCode)}
	for _, c := range fixtures.GetDefaultAttendanceCodes() {
		f.codes[c.Code] = c
	}
	return f
}

func (f *fakeCodeRepo) Create(_ context.Context, c code.AttendanceCode) (code.AttendanceCode, error) {
	f.codes[c.Code] = c
	return c, nil
}

func (f *fakeCodeRepo) GetByCode(_ context.Context, token string) (code.AttendanceCode, error) {
	c, ok := f.codes[token]
	if !ok {
		return code.AttendanceCode{}, code.ErrCodeNotFound
	}
	return c, nil
}

func (f *fakeCodeRepo) List(context.Context) ([]code.AttendanceCode, error) {
	out := make([]code.AttendanceCode, 0, len(f.codes))
	for _, c := range f.codes {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCodeRepo) ListActive(ctx context.Context) ([]code.AttendanceCode, error) {
	all, _ := f.List(ctx)
	var out []code.AttendanceCode
	for _, c := range all {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCodeRepo) Update(_ context.Context, c code.AttendanceCode) error {
	if _, ok := f.codes[c.Code]; !ok {
		return code.ErrCodeNotFound
	}
	f.codes[c.Code] = c
	return nil
}

// ========================================
// TEST SETUP
// ========================================

// June 2026 runs Monday the 1st through Tuesday the 30th: 22 weekdays.
const (
	testYear          = 2026
	testMonth         = 6
	weekdaysInMonth   = 22
	testEmployeeID    = "emp-1"
	daysInTestedMonth = 30
)

func testEmployee() employee.Employee {
	pos := "Engineer"
	return employee.Employee{
		ID:           testEmployeeID,
		EmployeeCode: "1000-0001",
		FirstName:    "Marie",
		LastName:     "Durand",
		Position:     &pos,
		IsActive:     true,
	}
}

func fillMonth(repo *fakeRecordRepo, token string) {
	for day := 1; day <= daysInTestedMonth; day++ {
		date := time.Date(testYear, testMonth, day, 0, 0, 0, 0, time.UTC)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		tok := token
		repo.records = append(repo.records, record.AttendanceRecord{
			ID:         uuid.NewString(),
			EmployeeID: testEmployeeID,
			Date:       date,
			CodeToken:  &tok,
			Status:     record.StatusPresent,
		})
	}
}

// ========================================
// TESTS
// ========================================

func TestBuildMonthlyGrid_FullPresenceMonth(t *testing.T) {
	t.Parallel()

	repo := &fakeRecordRepo{}
	fillMonth(repo, "P")
	svc := NewService(repo, &fakeEmployeeRepo{employees: []employee.Employee{testEmployee()}}, newFakeCodeRepo(), grid.PolicyAbsent)

	result, err := svc.BuildMonthlyGrid(context.Background(), grid.BuildRequest{Year: testYear, Month: testMonth})
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	require.Len(t, result.Days, daysInTestedMonth)
	assert.Equal(t, float64(weekdaysInMonth), result.Rows[0].Total)
	assert.Equal(t, float64(weekdaysInMonth), result.GrandTotal)
}

func TestBuildMonthlyGrid_HalfDayLowersTotal(t *testing.T) {
	t.Parallel()

	repo := &fakeRecordRepo{}
	fillMonth(repo, "P")
	// June 3rd 2026 is a Wednesday; swap it to a half day.
	halfDay := "P/2"
	for i, rec := range repo.records {
		if rec.Date.Day() == 3 {
			repo.records[i].CodeToken = &halfDay
		}
	}
	svc := NewService(repo, &fakeEmployeeRepo{employees: []employee.Employee{testEmployee()}}, newFakeCodeRepo(), grid.PolicyAbsent)

	result, err := svc.BuildMonthlyGrid(context.Background(), grid.BuildRequest{Year: testYear, Month: testMonth})
	require.NoError(t, err)

	assert.Equal(t, float64(weekdaysInMonth)-0.5, result.Rows[0].Total)
	assert.Equal(t, "P/2", result.Rows[0].Cells[2].Symbol)
	assert.Equal(t, 0.5, result.Rows[0].Cells[2].Weight)
}

func TestBuildMonthlyGrid_UnrecordedWeekdayDefaultsToAbsent(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRecordRepo{}, &fakeEmployeeRepo{employees: []employee.Employee{testEmployee()}}, newFakeCodeRepo(), grid.PolicyAbsent)

	result, err := svc.BuildMonthlyGrid(context.Background(), grid.BuildRequest{Year: testYear, Month: testMonth})
	require.NoError(t, err)

	row := result.Rows[0]
	// Monday the 1st: no record, weekday, policy fills an absence.
	assert.Equal(t, "A", row.Cells[0].Symbol)
	assert.Equal(t, 0.0, row.Cells[0].Weight)
	assert.False(t, row.Cells[0].Recorded)
	// Saturday the 6th carries the weekend symbol.
	assert.Equal(t, grid.WeekendSymbol, row.Cells[5].Symbol)
	assert.Equal(t, 0.0, row.Total)
}

func TestBuildMonthlyGrid_PolicyVariants(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee()}}

	blank := NewService(&fakeRecordRepo{}, emps, newFakeCodeRepo(), grid.PolicyBlank)
	result, err := blank.BuildMonthlyGrid(context.Background(), grid.BuildRequest{Year: testYear, Month: testMonth})
	require.NoError(t, err)
	assert.Equal(t, "", result.Rows[0].Cells[0].Symbol)
	assert.Equal(t, 0.0, result.Rows[0].Total)

	present := NewService(&fakeRecordRepo{}, emps, newFakeCodeRepo(), grid.PolicyPresent)
	result, err = present.BuildMonthlyGrid(context.Background(), grid.BuildRequest{Year: testYear, Month: testMonth})
	require.NoError(t, err)
	assert.Equal(t, "P", result.Rows[0].Cells[0].Symbol)
	assert.Equal(t, float64(weekdaysInMonth), result.Rows[0].Total)
}

func TestBuildMonthlyGrid_BareStatusCells(t *testing.T) {
	t.Parallel()

	repo := &fakeRecordRepo{}
	repo.records = append(repo.records, record.AttendanceRecord{
		ID:         uuid.NewString(),
		EmployeeID: testEmployeeID,
		Date:       time.Date(testYear, testMonth, 1, 0, 0, 0, 0, time.UTC),
		Status:     record.StatusLate,
	})
	svc := NewService(repo, &fakeEmployeeRepo{employees: []employee.Employee{testEmployee()}}, newFakeCodeRepo(), grid.PolicyBlank)

	result, err := svc.BuildMonthlyGrid(context.Background(), grid.BuildRequest{Year: testYear, Month: testMonth})
	require.NoError(t, err)

	cell := result.Rows[0].Cells[0]
	assert.Equal(t, "L", cell.Symbol)
	assert.Equal(t, 1.0, cell.Weight)
	assert.True(t, cell.Recorded)
}

func TestBuildMonthlyGrid_CatalogChangeReadsThrough(t *testing.T) {
	t.Parallel()

	repo := &fakeRecordRepo{}
	fillMonth(repo, "P")
	codes := newFakeCodeRepo()
	svc := NewService(repo, &fakeEmployeeRepo{employees: []employee.Employee{testEmployee()}}, codes, grid.PolicyAbsent)

	before, err := svc.BuildMonthlyGrid(context.Background(), grid.BuildRequest{Year: testYear, Month: testMonth})
	require.NoError(t, err)
	assert.Equal(t, float64(weekdaysInMonth), before.Rows[0].Total)

	// Reclassify P as a half-day fraction; the next build must see it.
	p := codes.codes["P"]
	p.DayFraction = 0.5
	codes.codes["P"] = p

	after, err := svc.BuildMonthlyGrid(context.Background(), grid.BuildRequest{Year: testYear, Month: testMonth})
	require.NoError(t, err)
	assert.Equal(t, float64(weekdaysInMonth)*0.5, after.Rows[0].Total)
}

func TestBuildMonthlyGrid_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRecordRepo{}, &fakeEmployeeRepo{}, newFakeCodeRepo(), grid.PolicyAbsent)

	_, err := svc.BuildMonthlyGrid(context.Background(), grid.BuildRequest{Year: testYear, Month: 13})
	assert.Error(t, err)
	_, err = svc.BuildMonthlyGrid(context.Background(), grid.BuildRequest{Year: 1990, Month: 1})
	assert.Error(t, err)
}
