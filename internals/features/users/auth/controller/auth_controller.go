package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRepo "dataku_backend/internals/features/users/auth/repository"
	authService "dataku_backend/internals/features/users/auth/service"
	helper "dataku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Mailer   authService.Mailer
}

func NewAuthController(db *gorm.DB, v *validator.Validate, mailer authService.Mailer) *AuthController {
	return &AuthController{DB: db, Validate: v, Mailer: mailer}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login: sukses mengembalikan token di body dan juga sebagai cookie httpOnly
// supaya klien browser lama tetap jalan.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, user, err := authService.Login(ctl.DB.WithContext(c.UserContext()), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return helper.Success(c, "Login berhasil", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"uid":      user.UID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return helper.Success(c, "Logout berhasil", nil)
}

// Me mengembalikan profil akun dari token yang sedang dipakai.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	uid, ok := c.Locals("user_id").(uint)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	user, err := authRepo.FindUserByUID(ctl.DB.WithContext(c.UserContext()), uid)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	return helper.Success(c, "OK", user)
}

type forgotPasswordRequest struct {
	Username string `json:"username" validate:"required"`
}

func (ctl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := authService.ForgotPassword(ctl.DB.WithContext(c.UserContext()), ctl.Mailer, req.Username); err != nil {
		if errors.Is(err, authService.ErrUserNotFound) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengirim tautan reset")
	}
	return helper.Success(c, "Tautan reset password sudah dikirim", nil)
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func (ctl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := authService.ResetPassword(ctl.DB.WithContext(c.UserContext()), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, authService.ErrResetToken) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengatur ulang password")
	}
	return helper.Success(c, "Password berhasil diubah", nil)
}

// CleanupResetTokens membuang token reset yang kedaluwarsa atau sudah
// terpakai. Endpoint pemeliharaan, khusus akun kelurahan.
func (ctl *AuthController) CleanupResetTokens(c *fiber.Ctx) error {
	n, err := authRepo.CleanupExpiredResetTokens(ctl.DB.WithContext(c.UserContext()))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membersihkan token reset")
	}
	return helper.Success(c, "Token reset dibersihkan", fiber.Map{"deleted": n})
}
