package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{
	"id", "email", "phone", "display_name", "coins", "referral_code", "referred_by",
	"daily_streak", "last_daily_bonus_at", "total_quizzes", "wins", "streak", "best_rank",
	"role", "created_at", "updated_at",
}

func setupAuthRepoTest(t *testing.T) (*AuthRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewAuthRepo(sqlxDB), mock
}

func TestUpsertOTP(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)
	now := time.Now()

	mock.ExpectExec("INSERT INTO otp_tokens (.+) ON CONFLICT \\(contact\\) DO UPDATE").
		WithArgs("ana@example.com", "hash", now.Add(5*time.Minute), now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertOTP(context.Background(), &models.OTP{
		Contact:   "ana@example.com",
		CodeHash:  "hash",
		ExpiresAt: now.Add(5 * time.Minute),
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOTP(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		assertFn  func(t *testing.T, otp *models.OTP, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"contact", "code_hash", "expires_at", "attempts", "created_at", "updated_at"}).
					AddRow("ana@example.com", "hash", now, 2, now, now)
				mock.ExpectQuery("SELECT (.+) FROM otp_tokens WHERE contact = \\$1").
					WithArgs("ana@example.com").
					WillReturnRows(rows)
			},
			assertFn: func(t *testing.T, otp *models.OTP, err error) {
				require.NoError(t, err)
				assert.Equal(t, "hash", otp.CodeHash)
				assert.Equal(t, 2, otp.Attempts)
			},
		},
		{
			name: "Not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM otp_tokens").
					WithArgs("ana@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			assertFn: func(t *testing.T, otp *models.OTP, err error) {
				assert.Nil(t, otp)
				assert.True(t, apperr.Is(err, apperr.NotFound))
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM otp_tokens").
					WithArgs("ana@example.com").
					WillReturnError(errors.New("connection reset"))
			},
			assertFn: func(t *testing.T, otp *models.OTP, err error) {
				assert.Nil(t, otp)
				assert.Error(t, err)
				assert.False(t, apperr.Is(err, apperr.NotFound))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupAuthRepoTest(t)
			tc.mockSetup(mock)

			otp, err := repo.GetOTP(context.Background(), "ana@example.com")
			tc.assertFn(t, otp, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestIncrementOTPAttempts(t *testing.T) {
	t.Run("Returns new count", func(t *testing.T) {
		repo, mock := setupAuthRepoTest(t)
		mock.ExpectQuery("UPDATE otp_tokens SET attempts = attempts \\+ 1").
			WithArgs("ana@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"attempts"}).AddRow(3))

		attempts, err := repo.IncrementOTPAttempts(context.Background(), "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Token gone", func(t *testing.T) {
		repo, mock := setupAuthRepoTest(t)
		mock.ExpectQuery("UPDATE otp_tokens").
			WithArgs("ana@example.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.IncrementOTPAttempts(context.Background(), "ana@example.com")
		assert.True(t, apperr.Is(err, apperr.NotFound))
	})
}

func TestConsumeOTP(t *testing.T) {
	t.Run("Consumed", func(t *testing.T) {
		repo, mock := setupAuthRepoTest(t)
		mock.ExpectExec("DELETE FROM otp_tokens WHERE contact = \\$1 AND code_hash = \\$2").
			WithArgs("ana@example.com", "hash").
			WillReturnResult(sqlmock.NewResult(0, 1))

		consumed, err := repo.ConsumeOTP(context.Background(), "ana@example.com", "hash")
		require.NoError(t, err)
		assert.True(t, consumed)
	})

	t.Run("Already used", func(t *testing.T) {
		repo, mock := setupAuthRepoTest(t)
		mock.ExpectExec("DELETE FROM otp_tokens").
			WithArgs("ana@example.com", "hash").
			WillReturnResult(sqlmock.NewResult(0, 0))

		consumed, err := repo.ConsumeOTP(context.Background(), "ana@example.com", "hash")
		require.NoError(t, err)
		assert.False(t, consumed)
	})
}

func TestDeleteOTP(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)
	mock.ExpectExec("DELETE FROM otp_tokens WHERE contact = \\$1").
		WithArgs("ana@example.com").
		WillReturnError(errors.New("boom"))

	err := repo.DeleteOTP(context.Background(), "ana@example.com")
	assert.ErrorContains(t, err, "failed to delete otp")
}

func TestGetUserByContact(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)
	now := time.Now()

	rows := sqlmock.NewRows(userRowColumns).AddRow(
		"user-1", nil, "+628123456789", "Player-6789", int64(250), "ABCD23", nil,
		0, nil, 0, 0, 0, nil, "player", now, now)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1 OR phone = \\$1").
		WithArgs("+628123456789").
		WillReturnRows(rows)

	user, err := repo.GetUserByContact(context.Background(), "+628123456789")
	require.NoError(t, err)
	assert.Equal(t, "+628123456789", user.Contact())
	assert.Nil(t, user.Email)
	assert.Equal(t, int64(250), user.Coins)
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByID(context.Background(), "ghost")
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestReferralCodeExists(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("ABCD23").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ReferralCodeExists(context.Background(), "ABCD23")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateUser(t *testing.T) {
	email := "ana@example.com"
	now := time.Now()
	user := &models.User{
		ID:           "user-1",
		Email:        &email,
		DisplayName:  "ana",
		Coins:        250,
		ReferralCode: "ABCD23",
		Role:         "player",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	t.Run("Success", func(t *testing.T) {
		repo, mock := setupAuthRepoTest(t)
		mock.ExpectExec("INSERT INTO users").
			WithArgs("user-1", email, nil, "ana", int64(250), "ABCD23", nil, "player", now, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.CreateUser(context.Background(), user))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate contact", func(t *testing.T) {
		repo, mock := setupAuthRepoTest(t)
		mock.ExpectExec("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.CreateUser(context.Background(), user)
		assert.True(t, apperr.Is(err, apperr.Conflict))
	})
}
