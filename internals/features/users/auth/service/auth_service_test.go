package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dataku_backend/internals/configs"
	authModel "dataku_backend/internals/features/users/auth/model"
	authRepo "dataku_backend/internals/features/users/auth/repository"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	configs.JWTSecret = "test-secret"

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&authModel.UserModel{}, &authModel.PasswordResetTokenModel{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, password, role string) *authModel.UserModel {
	t.Helper()
	hashed, err := HashPassword(password)
	require.NoError(t, err)
	u := &authModel.UserModel{Username: username, Email: username + "@example.com", Password: hashed, Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

type captureMailer struct {
	toEmail  string
	username string
	token    string
}

func (m *captureMailer) SendResetLink(toEmail, username, token string) error {
	m.toEmail, m.username, m.token = toEmail, username, token
	return nil
}

func TestLoginIssuesTokenWithClaims(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "RW3", "rahasia-123", "03")

	token, user, err := Login(db, "RW3", "rahasia-123")
	require.NoError(t, err)
	assert.Equal(t, "03", user.Role)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "RW3", claims["user_name"])
	assert.Equal(t, "03", claims["role"])
	assert.EqualValues(t, user.UID, claims["user_id"])

	exp := int64(claims["exp"].(float64))
	assert.Greater(t, exp, time.Now().Unix())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "KELURAHAN", "rahasia-123", "superadmin")

	_, _, err := Login(db, "KELURAHAN", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = Login(db, "TIDAK-ADA", "apa saja")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestForgotPasswordUnknownUsername(t *testing.T) {
	db := setupDB(t)
	err := ForgotPassword(db, &captureMailer{}, "TIDAK-ADA")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestForgotThenResetPassword(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "RW1", "lama-12345", "01")

	m := &captureMailer{}
	require.NoError(t, ForgotPassword(db, m, "RW1"))
	assert.Equal(t, "RW1", m.username)
	require.Len(t, m.token, 32)

	require.NoError(t, ResetPassword(db, m.token, "baru-12345"))

	// password baru berlaku, lama tidak
	_, _, err := Login(db, "RW1", "baru-12345")
	require.NoError(t, err)
	_, _, err = Login(db, "RW1", "lama-12345")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// token sekali pakai
	err = ResetPassword(db, m.token, "lagi-12345")
	assert.ErrorIs(t, err, ErrResetToken)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db, "RW2", "lama-12345", "02")

	rec := &authModel.PasswordResetTokenModel{
		UserUID:   u.UID,
		Token:     "kedaluwarsa-kedaluwarsa-kedaluwar",
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}
	require.NoError(t, authRepo.CreateResetToken(db, rec))

	err := ResetPassword(db, rec.Token, "baru-12345")
	assert.ErrorIs(t, err, ErrResetToken)
}

func TestResetPasswordUnknownToken(t *testing.T) {
	db := setupDB(t)
	err := ResetPassword(db, "tidak-ada", "baru-12345")
	assert.ErrorIs(t, err, ErrResetToken)
}

func TestCleanupExpiredResetTokens(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db, "RW4", "rahasia-123", "04")

	now := time.Now().UTC()
	expired := &authModel.PasswordResetTokenModel{UserUID: u.UID, Token: "token-kedaluwarsa", ExpiresAt: now.Add(-time.Hour)}
	used := &authModel.PasswordResetTokenModel{UserUID: u.UID, Token: "token-terpakai", ExpiresAt: now.Add(time.Hour), Used: true}
	valid := &authModel.PasswordResetTokenModel{UserUID: u.UID, Token: "token-aktif", ExpiresAt: now.Add(time.Hour)}
	for _, rec := range []*authModel.PasswordResetTokenModel{expired, used, valid} {
		require.NoError(t, authRepo.CreateResetToken(db, rec))
	}

	n, err := authRepo.CleanupExpiredResetTokens(db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	// token yang masih berlaku tidak ikut terhapus
	rec, err := authRepo.FindResetToken(db, "token-aktif")
	require.NoError(t, err)
	assert.Equal(t, valid.ID, rec.ID)

	_, err = authRepo.FindResetToken(db, "token-kedaluwarsa")
	assert.Error(t, err)
}
