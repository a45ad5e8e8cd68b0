package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"dataku_backend/internals/configs"
	"dataku_backend/internals/features/registry/scope"
)

// AuthMiddleware memverifikasi JWT dan menyimpan identitas + cakupan RW ke
// context. Role yang tidak dikenali ditolak di sini, bukan dibiarkan lewat.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		uid, ok := extractUserID(claims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		roleStr, _ := claims["role"].(string)
		role, err := scope.ParseRole(roleStr)
		if err != nil {
			log.Printf("[WARNING] role %q tidak dikenali untuk user %d", roleStr, uid)
			return fiber.NewError(fiber.StatusForbidden, "Role tidak dikenali")
		}

		c.Locals("user_id", uid)
		if name, ok := claims["user_name"].(string); ok {
			c.Locals("user_name", name)
		}
		c.Locals("userRole", roleStr)
		scope.StoreCtx(c, role)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := c.Get(fiber.HeaderAuthorization)
	if auth == "" {
		if cookieTok := c.Cookies("token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", errors.New("Unauthorized - No token provided")
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("Unauthorized - Malformed Authorization header")
	}
	return parts[1], nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return errors.New("exp claim missing")
	}
	expFloat, ok := expVal.(float64)
	if !ok {
		return errors.New("exp claim malformed")
	}
	if time.Now().Add(-leeway).Unix() >= int64(expFloat) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uint, bool) {
	v, ok := claims["user_id"]
	if !ok {
		return 0, false
	}
	// JSON decode selalu menghasilkan float64 untuk angka.
	f, ok := v.(float64)
	if !ok || f < 1 {
		return 0, false
	}
	return uint(f), true
}
