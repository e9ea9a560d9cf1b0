package house

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func houseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "floor", "section", "room_name", "room_type", "price", "is_vacant", "amenities",
	})
}

func TestSearch_VacantOnlyByDefault(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("AND is_vacant = TRUE").
		WillReturnRows(houseRows().
			AddRow("house-1", "1", "A", "A1", "bedsitter", int64(5000), true, "{wifi,water}"))

	repo := NewRepository(db)
	houses, err := repo.Search(context.Background(), &SearchFilters{VacantOnly: true})

	require.NoError(t, err)
	require.Len(t, houses, 1)
	assert.Equal(t, "A1", houses[0].RoomName)
	assert.True(t, houses[0].IsVacant)
	assert.Equal(t, []string{"wifi", "water"}, houses[0].Amenities)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearch_PriceFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	min, max := int64(4000), int64(8000)
	mock.ExpectQuery("price >= ").
		WithArgs(min, max).
		WillReturnRows(houseRows())

	repo := NewRepository(db)
	houses, err := repo.Search(context.Background(), &SearchFilters{
		MinPrice: &min,
		MaxPrice: &max,
	})

	require.NoError(t, err)
	assert.Empty(t, houses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_None(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM houses").
		WithArgs("missing").
		WillReturnRows(houseRows())

	repo := NewRepository(db)
	house, err := repo.GetByID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, house)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM houses").
		WithArgs("missing").
		WillReturnRows(houseRows())

	svc := NewService(NewRepository(db))
	_, err = svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrHouseNotFound)
}
