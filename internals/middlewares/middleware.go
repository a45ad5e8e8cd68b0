package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "dataku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar dengan urutan tetap:
// recovery paling luar supaya panic di middleware lain ikut tertangkap.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
