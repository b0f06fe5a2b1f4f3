package middleware

import (
	"strings"

	"sipensiun/internal/token"

	"github.com/gofiber/fiber/v2"
)

// Auth memvalidasi bearer token lalu menyimpan claims ke Locals:
// user_id, nip, role, unit_kerja_id, impersonator_id, dan claims utuh.
func Auth(tokens *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak ditemukan"})
		}

		// Format header: "Bearer <token>"
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak valid atau kadaluwarsa"})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("nip", claims.NIP)
		c.Locals("role", claims.Role)
		c.Locals("unit_kerja_id", claims.UnitKerjaID)
		c.Locals("impersonator_id", claims.ImpersonatorID)
		c.Locals("claims", claims)

		return c.Next()
	}
}

func Claims(c *fiber.Ctx) *token.Claims {
	claims, _ := c.Locals("claims").(*token.Claims)
	return claims
}

// UserID dari Locals, 0 bila belum melewati Auth.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}

func UserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}
