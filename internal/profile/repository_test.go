package profile

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "role", "full_name", "email", "phone", "password_hash",
		"deleted_at", "created_at", "updated_at",
	})
}

func TestListActiveTenants_UsesDeletedFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`role = 'tenant' AND deleted_at IS NULL`).
		WillReturnRows(profileRows().
			AddRow("tenant-1", "tenant", "Jane Wanjiku", "jane@example.com", nil, "hash", nil, now, now))

	repo := NewRepository(db)
	tenants, err := repo.ListActiveTenants(context.Background())

	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, "Jane Wanjiku", tenants[0].FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail_None(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE email").
		WithArgs("missing@example.com").
		WillReturnRows(profileRows())

	repo := NewRepository(db)
	p, err := repo.GetByEmail(context.Background(), "missing@example.com")

	require.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE profiles").
		WithArgs("tenant-9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository(db)
	err = repo.SoftDelete(context.Background(), "tenant-9")

	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
