package service

import (
	"database/sql"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gymdesk_backend/internals/configs"
	authDTO "gymdesk_backend/internals/features/users/auth/dto"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func forgotPasswordApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Post("/forgot", func(c *fiber.Ctx) error {
		var req authDTO.ForgotPasswordRequest
		if err := c.BodyParser(&req); err != nil {
			return err
		}
		return ForgotPassword(db, c, &req)
	})
	return app
}

func postForgot(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	req := httptest.NewRequest("POST", "/forgot",
		strings.NewReader(`{"user_email":"`+email+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestForgotPasswordNeverReturnsTokenInBody(t *testing.T) {
	configs.ResetPasswordSecret = "reset-secret-for-tests"
	db, mock := newMockDB(t)

	var delivered string
	orig := SendResetToken
	SendResetToken = func(email, token string) { delivered = token }
	defer func() { SendResetToken = orig }()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"user_id", "user_org_id", "user_email", "user_persona"}).
			AddRow(7, 1, "ana@gym.test", "User"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "password_reset_tokens"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "password_reset_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"reset_token_id"}).AddRow(1))
	mock.ExpectCommit()

	body := postForgot(t, forgotPasswordApp(db), "ana@gym.test")

	require.NotEmpty(t, delivered, "token must reach the out-of-band delivery hook")
	assert.NotContains(t, body, delivered)
	assert.NotContains(t, body, "reset_token")
	assert.Contains(t, body, "if the email exists, a reset link was sent")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForgotPasswordSameBodyForUnknownEmail(t *testing.T) {
	configs.ResetPasswordSecret = "reset-secret-for-tests"
	db, mock := newMockDB(t)

	orig := SendResetToken
	SendResetToken = func(email, token string) {}
	defer func() { SendResetToken = orig }()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"user_id", "user_org_id", "user_email", "user_persona"}).
			AddRow(7, 1, "ana@gym.test", "User"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "password_reset_tokens"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "password_reset_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"reset_token_id"}).AddRow(1))
	mock.ExpectCommit()
	knownBody := postForgot(t, forgotPasswordApp(db), "ana@gym.test")

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnError(sql.ErrNoRows)
	unknownBody := postForgot(t, forgotPasswordApp(db), "nobody@gym.test")

	// a caller probing for accounts sees identical responses either way
	assert.Equal(t, knownBody, unknownBody)
	assert.NoError(t, mock.ExpectationsWereMet())
}
