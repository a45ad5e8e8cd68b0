package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "dataku_backend/internals/helpers"
)

// BaseRoutes: health check untuk pengecekan deploy.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil {
			return helper.Error(c, fiber.StatusServiceUnavailable, "Database handle tidak tersedia")
		}
		if err := sqlDB.PingContext(c.UserContext()); err != nil {
			return helper.Error(c, fiber.StatusServiceUnavailable, "Database tidak merespons")
		}
		return helper.Success(c, "OK", fiber.Map{"status": "healthy"})
	})
}
