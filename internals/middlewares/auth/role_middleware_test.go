package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoleApp(role string, allowed ...string) *fiber.App {
	app := fiber.New()
	app.Get("/admin-only",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals("userRole", role)
			}
			return c.Next()
		},
		OnlyRoles("Khusus akun kelurahan", allowed...),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestOnlyRolesAllowsListedRole(t *testing.T) {
	for _, role := range []string{"admin", "superadmin"} {
		app := newRoleApp(role, "admin", "superadmin")
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin-only", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "role %q", role)
	}
}

func TestOnlyRolesRejectsOtherRole(t *testing.T) {
	app := newRoleApp("03", "admin", "superadmin")
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin-only", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestOnlyRolesRequiresAuthContext(t *testing.T) {
	// tanpa Locals userRole (middleware auth tidak jalan)
	app := newRoleApp("", "admin", "superadmin")
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin-only", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
