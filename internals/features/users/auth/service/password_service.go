package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "dataku_backend/internals/features/users/auth/model"
	authRepo "dataku_backend/internals/features/users/auth/repository"
)

const resetTokenTTL = time.Hour

var (
	ErrUserNotFound = errors.New("Username tidak ditemukan!")
	ErrResetToken   = errors.New("token reset tidak valid atau sudah kedaluwarsa")
)

// ForgotPassword membuat token reset sekali pakai dan mengirim tautannya.
// User tanpa email tetap dapat token (hanya tercatat di log lewat LogMailer).
func ForgotPassword(db *gorm.DB, mailer Mailer, username string) error {
	user, err := authRepo.FindUserByUsername(db, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	rec := &authModel.PasswordResetTokenModel{
		UserUID:   user.UID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(resetTokenTTL),
	}
	if err := authRepo.CreateResetToken(db, rec); err != nil {
		return err
	}

	return mailer.SendResetLink(user.Email, user.Username, token)
}

// ResetPassword menukar token valid dengan password baru. Token langsung
// ditandai terpakai dalam transaksi yang sama.
func ResetPassword(db *gorm.DB, token, newPassword string) error {
	rec, err := authRepo.FindResetToken(db, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetToken
		}
		return err
	}
	if rec.Used || rec.Expired(time.Now().UTC()) {
		return ErrResetToken
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := authRepo.UpdateUserPassword(tx, rec.UserUID, hashed); err != nil {
			return err
		}
		return authRepo.MarkResetTokenUsed(tx, rec.ID)
	})
}
