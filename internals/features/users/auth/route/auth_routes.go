package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dataku_backend/internals/constants"
	authController "dataku_backend/internals/features/users/auth/controller"
	authService "dataku_backend/internals/features/users/auth/service"
	"dataku_backend/internals/middlewares"
	authMiddleware "dataku_backend/internals/middlewares/auth"
)

// AuthRoutes: login/forgot/reset publik (dengan limiter masing-masing),
// logout dan /me butuh token, endpoint pemeliharaan khusus kelurahan.
func AuthRoutes(router fiber.Router, db *gorm.DB, v *validator.Validate, mailer authService.Mailer) {
	ctl := authController.NewAuthController(db, v, mailer)

	auth := router.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctl.ForgotPassword)
	auth.Post("/reset-password", ctl.ResetPassword)

	auth.Post("/logout", authMiddleware.AuthMiddleware(), ctl.Logout)
	auth.Get("/me", authMiddleware.AuthMiddleware(), ctl.Me)

	auth.Post("/cleanup-reset-tokens",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Khusus akun kelurahan", constants.RoleAdmin, constants.RoleSuperadmin),
		ctl.CleanupResetTokens,
	)
}
