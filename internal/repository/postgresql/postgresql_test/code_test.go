package postgresql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/code"
	"github.com/timedesk/timekeeper-backend-go/internal/fixtures"
	"github.com/timedesk/timekeeper-backend-go/internal/repository/postgresql"
	codeService "github.com/timedesk/timekeeper-backend-go/internal/service/code"
)

func TestCodeRepository_CreateAndLookup(t *testing.T) {
	setup := NewTestDatabase(t)
	defer setup.Close()

	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	repo := postgresql.NewCodeRepository(setup.DB)

	seed := fixtures.GetDefaultAttendanceCodes()[0]
	created, err := repo.Create(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, "P", created.Code)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByCode(ctx, "P")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.IsActive)

	_, err = repo.GetByCode(ctx, "NOPE")
	assert.ErrorIs(t, err, code.ErrCodeNotFound)

	_, err = repo.Create(ctx, seed)
	assert.ErrorIs(t, err, code.ErrDuplicateCode)
}

func TestCodeService_SeedDefaults(t *testing.T) {
	setup := NewTestDatabase(t)
	defer setup.Close()

	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	svc := codeService.NewService(setup.DB, postgresql.NewCodeRepository(setup.DB))

	seeded, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 66, seeded)

	// Rerunning against a seeded catalog inserts nothing.
	seeded, err = svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, seeded)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 66)
}
