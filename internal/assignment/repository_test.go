package assignment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetActiveByTenant_None(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT a.id, a.tenant_id").
		WithArgs("tenant-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tenant_id", "house_id", "assigned_by", "assigned_at", "is_active",
			"h_id", "floor", "section", "room_name", "room_type", "price",
		}))

	repo := NewRepository(db)
	a, err := repo.GetActiveByTenant(context.Background(), "tenant-1")

	require.NoError(t, err)
	assert.Nil(t, a)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByTenant_One(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assignedAt := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)
	adminID := "admin-1"

	mock.ExpectQuery("SELECT a.id, a.tenant_id").
		WithArgs("tenant-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tenant_id", "house_id", "assigned_by", "assigned_at", "is_active",
			"h_id", "floor", "section", "room_name", "room_type", "price",
		}).AddRow(
			"assign-1", "tenant-1", "house-1", &adminID, assignedAt, true,
			"house-1", "1", "A", "A1", "bedsitter", int64(5000),
		))

	repo := NewRepository(db)
	a, err := repo.GetActiveByTenant(context.Background(), "tenant-1")

	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "assign-1", a.ID)
	assert.Equal(t, "house-1", a.HouseID)
	assert.True(t, a.IsActive)
	require.NotNil(t, a.House)
	assert.Equal(t, "A1", a.House.RoomName)
	assert.Equal(t, int64(5000), a.House.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Resolve(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Run("no active assignment", func(t *testing.T) {
		mock.ExpectQuery("SELECT a.id, a.tenant_id").
			WithArgs("tenant-2").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "tenant_id", "house_id", "assigned_by", "assigned_at", "is_active",
				"h_id", "floor", "section", "room_name", "room_type", "price",
			}))

		svc := NewService(NewRepository(db))
		_, err := svc.Resolve(context.Background(), "tenant-2")

		assert.ErrorIs(t, err, ErrNoActiveAssignment)
	})
}

func TestUnassign_MarksHouseVacant(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assignedAt := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE tenant_assignments").
		WithArgs("tenant-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tenant_id", "house_id", "assigned_by", "assigned_at", "is_active",
		}).AddRow("assign-1", "tenant-1", "house-1", nil, assignedAt, false))
	mock.ExpectExec("UPDATE houses SET is_vacant = TRUE").
		WithArgs("house-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewRepository(db)
	a, err := repo.Unassign(context.Background(), "tenant-1")

	require.NoError(t, err)
	require.NotNil(t, a)
	assert.False(t, a.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnassign_NoActiveAssignment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE tenant_assignments").
		WithArgs("tenant-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tenant_id", "house_id", "assigned_by", "assigned_at", "is_active",
		}))
	mock.ExpectRollback()

	repo := NewRepository(db)
	a, err := repo.Unassign(context.Background(), "tenant-1")

	require.NoError(t, err)
	assert.Nil(t, a)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssign_RejectsOccupiedHouse(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT is_vacant FROM houses").
		WithArgs("house-1").
		WillReturnRows(sqlmock.NewRows([]string{"is_vacant"}).AddRow(false))
	mock.ExpectRollback()

	repo := NewRepository(db)
	_, err = repo.Assign(context.Background(), "tenant-1", "house-1", "admin-1")

	assert.ErrorIs(t, err, ErrHouseOccupied)
	assert.NoError(t, mock.ExpectationsWereMet())
}
