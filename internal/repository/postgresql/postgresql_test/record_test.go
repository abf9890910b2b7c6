package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/record"
	"github.com/timedesk/timekeeper-backend-go/internal/repository/postgresql"
)

func seedEmployee(t *testing.T, setup *TestDatabaseSetup) string {
	t.Helper()
	ctx := context.Background()

	deptID := uuid.NewString()
	_, err := setup.DB.Exec(ctx, `
		INSERT INTO departments (id, name) VALUES ($1, $2)
	`, deptID, "Engineering")
	require.NoError(t, err)

	empID := uuid.NewString()
	_, err = setup.DB.Exec(ctx, `
		INSERT INTO employees (id, employee_code, first_name, last_name, department_id, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
	`, empID, "1000-0001", "Marie", "Durand", deptID)
	require.NoError(t, err)

	return empID
}

func TestRecordRepository_CreateAndGet(t *testing.T) {
	setup := NewTestDatabase(t)
	defer setup.Close()

	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	empID := seedEmployee(t, setup)
	repo := postgresql.NewRecordRepository(setup.DB)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	checkIn := day.Add(8 * time.Hour)
	device := "terminal-1"

	created, err := repo.Create(ctx, record.AttendanceRecord{
		ID:         uuid.NewString(),
		EmployeeID: empID,
		Date:       day,
		CheckIn:    &record.Stamp{Time: checkIn, Device: &device},
		Status:     record.StatusPresent,
	})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, empID, fetched.EmployeeID)
	require.NotNil(t, fetched.CheckIn)
	assert.True(t, fetched.CheckIn.Time.Equal(checkIn))
	require.NotNil(t, fetched.CheckIn.Device)
	assert.Equal(t, device, *fetched.CheckIn.Device)
	require.NotNil(t, fetched.EmployeeName)
	assert.Equal(t, "Durand Marie", *fetched.EmployeeName)

	byDay, err := repo.GetByEmployeeAndDate(ctx, empID, day)
	require.NoError(t, err)
	require.NotNil(t, byDay)
	assert.Equal(t, created.ID, byDay.ID)

	empty, err := repo.GetByEmployeeAndDate(ctx, empID, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestRecordRepository_DuplicateDayRejected(t *testing.T) {
	setup := NewTestDatabase(t)
	defer setup.Close()

	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	empID := seedEmployee(t, setup)
	repo := postgresql.NewRecordRepository(setup.DB)

	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, record.AttendanceRecord{
		ID:         uuid.NewString(),
		EmployeeID: empID,
		Date:       day,
		Status:     record.StatusPresent,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, record.AttendanceRecord{
		ID:         uuid.NewString(),
		EmployeeID: empID,
		Date:       day,
		Status:     record.StatusAbsent,
	})
	assert.ErrorIs(t, err, record.ErrDuplicateRecord)
}

func TestRecordRepository_UpdateAndDelete(t *testing.T) {
	setup := NewTestDatabase(t)
	defer setup.Close()

	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	empID := seedEmployee(t, setup)
	repo := postgresql.NewRecordRepository(setup.DB)

	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, record.AttendanceRecord{
		ID:         uuid.NewString(),
		EmployeeID: empID,
		Date:       day,
		CheckIn:    &record.Stamp{Time: day.Add(8 * time.Hour)},
		Status:     record.StatusPresent,
	})
	require.NoError(t, err)

	workHours := 9.0
	overtime := 1.0
	created.CheckOut = &record.Stamp{Time: day.Add(17 * time.Hour)}
	created.WorkHours = &workHours
	created.Overtime = &overtime
	require.NoError(t, repo.Update(ctx, created))

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.CheckOut)
	require.NotNil(t, fetched.WorkHours)
	assert.Equal(t, 9.0, *fetched.WorkHours)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, record.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), record.ErrRecordNotFound)
}

func TestRecordRepository_ListByDateRange(t *testing.T) {
	setup := NewTestDatabase(t)
	defer setup.Close()

	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	empID := seedEmployee(t, setup)
	repo := postgresql.NewRecordRepository(setup.DB)

	for day := 2; day <= 6; day++ {
		_, err := repo.Create(ctx, record.AttendanceRecord{
			ID:         uuid.NewString(),
			EmployeeID: empID,
			Date:       time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
			Status:     record.StatusPresent,
		})
		require.NoError(t, err)
	}

	records, err := repo.ListByDateRange(ctx, record.RangeFilter{
		EmployeeID: &empID,
		From:       time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, records, 3)
}
