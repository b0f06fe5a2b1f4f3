package handler

import (
	"strings"

	"sipensiun/internal/model"
	"sipensiun/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	repo repository.RoleRepository
}

func NewRoleHandler(repo repository.RoleRepository) *RoleHandler {
	return &RoleHandler{repo: repo}
}

func (h *RoleHandler) GetAll(c *fiber.Ctx) error {
	roles, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data role"})
	}
	return c.JSON(fiber.Map{"data": roles})
}

func (h *RoleHandler) GetPermissions(c *fiber.Ctx) error {
	perms, err := h.repo.GetAllPermissions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data permission"})
	}
	return c.JSON(fiber.Map{"data": perms})
}

type RoleRequest struct {
	NamaRole      string `json:"nama_role"`
	PermissionIDs []uint `json:"permission_ids"`
}

func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var req RoleRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.NamaRole) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama role wajib diisi"})
	}

	role := model.Role{NamaRole: strings.TrimSpace(req.NamaRole)}
	if err := h.repo.Create(&role, req.PermissionIDs); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Gagal membuat role"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Role berhasil dibuat", "data": role})
}

func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var req RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	role, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Role tidak ditemukan"})
	}
	// Nama role bawaan dipakai di pengecekan akses, jadi tidak boleh diganti
	if req.NamaRole != "" && role.NamaRole != model.RoleSuperadmin {
		role.NamaRole = strings.TrimSpace(req.NamaRole)
	}
	if err := h.repo.Update(role, req.PermissionIDs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update role"})
	}
	return c.JSON(fiber.Map{"message": "Role berhasil diperbarui", "data": role})
}

func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	role, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Role tidak ditemukan"})
	}
	if role.NamaRole == model.RoleSuperadmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Role Superadmin tidak bisa dihapus"})
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus role"})
	}
	return c.JSON(fiber.Map{"message": "Role berhasil dihapus"})
}
