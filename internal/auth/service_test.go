package auth

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/amutiso/kwakamande/internal/profile"
)

func profileRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "role", "full_name", "email", "phone", "password_hash",
		"deleted_at", "created_at", "updated_at",
	})
}

func TestLogin_WrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE email").
		WithArgs("jane@example.com").
		WillReturnRows(profileRows().
			AddRow("tenant-1", "tenant", "Jane Wanjiku", "jane@example.com", nil, string(hash), nil, now, now))

	svc := NewService(profile.NewRepository(db), "test-secret", time.Hour)
	_, err = svc.Login(context.Background(), &LoginRequest{Email: "jane@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE email").
		WithArgs("nobody@example.com").
		WillReturnRows(profileRows())

	svc := NewService(profile.NewRepository(db), "test-secret", time.Hour)
	_, err = svc.Login(context.Background(), &LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RemovedAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Now()
	deletedAt := now.Add(-24 * time.Hour)
	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE email").
		WithArgs("gone@example.com").
		WillReturnRows(profileRows().
			AddRow("tenant-2", "tenant", "Gone Tenant", "gone@example.com", nil, string(hash), &deletedAt, now, now))

	svc := NewService(profile.NewRepository(db), "test-secret", time.Hour)
	_, err = svc.Login(context.Background(), &LoginRequest{Email: "gone@example.com", Password: "correct-password"})

	assert.ErrorIs(t, err, ErrAccountRemoved)
}

func TestRegister_EmailTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE email").
		WithArgs("jane@example.com").
		WillReturnRows(profileRows().
			AddRow("tenant-1", "tenant", "Jane Wanjiku", "jane@example.com", nil, "hash", nil, now, now))

	svc := NewService(profile.NewRepository(db), "test-secret", time.Hour)
	_, err = svc.Register(context.Background(), &RegisterRequest{
		FullName: "Jane Wanjiku",
		Email:    "jane@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE email").
		WithArgs("jane@example.com").
		WillReturnRows(profileRows().
			AddRow("tenant-1", "tenant", "Jane Wanjiku", "jane@example.com", nil, string(hash), nil, now, now))

	svc := NewService(profile.NewRepository(db), "test-secret", time.Hour)
	resp, err := svc.Login(context.Background(), &LoginRequest{Email: "jane@example.com", Password: "correct-password"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "tenant-1", resp.Profile.ID)
	assert.Equal(t, "tenant", resp.Profile.Role)
}
