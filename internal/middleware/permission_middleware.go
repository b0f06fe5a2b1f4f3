package middleware

import (
	"sipensiun/internal/model"
	"sipensiun/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func Permission(roles repository.RoleRepository, requiredPermission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Ambil Role user dari Context (diset di Auth middleware)
		userRole, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Role tidak valid"})
		}

		// 2. Superadmin bypass
		if userRole == model.RoleSuperadmin {
			return c.Next()
		}

		// 3. Cek permission role ke database
		role, err := roles.GetByName(userRole)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Role tidak ditemukan"})
		}

		if !role.HasPermission(requiredPermission) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Anda tidak memiliki izin " + requiredPermission})
		}

		return c.Next()
	}
}
