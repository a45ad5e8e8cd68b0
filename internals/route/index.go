package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registryRoute "dataku_backend/internals/features/registry/route"
	authRoute "dataku_backend/internals/features/users/auth/route"
	authService "dataku_backend/internals/features/users/auth/service"
	authMiddleware "dataku_backend/internals/middlewares/auth"
)

// SetupRoutes merangkai seluruh route aplikasi.
// /api/auth/* publik (limiter per-endpoint), sisanya di balik AuthMiddleware.
func SetupRoutes(app *fiber.App, db *gorm.DB, mailer authService.Mailer) {
	v := validator.New()

	BaseRoutes(app, db)

	api := app.Group("/api")
	authRoute.AuthRoutes(api, db, v, mailer)

	protected := api.Group("", authMiddleware.AuthMiddleware())
	registryRoute.RegistryRoutes(protected, db, v)
}
