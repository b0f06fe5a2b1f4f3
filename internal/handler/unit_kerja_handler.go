package handler

import (
	"strings"

	"sipensiun/internal/model"
	"sipensiun/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type UnitKerjaHandler struct {
	repo repository.UnitKerjaRepository
}

func NewUnitKerjaHandler(repo repository.UnitKerjaRepository) *UnitKerjaHandler {
	return &UnitKerjaHandler{repo: repo}
}

func (h *UnitKerjaHandler) GetAll(c *fiber.Ctx) error {
	units, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data unit kerja"})
	}
	return c.JSON(fiber.Map{"data": units})
}

type UnitKerjaRequest struct {
	NamaUnit string `json:"nama_unit"`
	Kode     string `json:"kode"`
	Alamat   string `json:"alamat"`
}

func (h *UnitKerjaHandler) Create(c *fiber.Ctx) error {
	var req UnitKerjaRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.NamaUnit) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama unit wajib diisi"})
	}

	unit := model.UnitKerja{
		NamaUnit: strings.TrimSpace(req.NamaUnit),
		Kode:     strings.TrimSpace(req.Kode),
		Alamat:   req.Alamat,
	}
	if err := h.repo.Create(&unit); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat unit kerja"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Unit kerja berhasil dibuat", "data": unit})
}

func (h *UnitKerjaHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var req UnitKerjaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	unit, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unit kerja tidak ditemukan"})
	}
	if req.NamaUnit != "" {
		unit.NamaUnit = strings.TrimSpace(req.NamaUnit)
	}
	unit.Kode = strings.TrimSpace(req.Kode)
	unit.Alamat = req.Alamat

	if err := h.repo.Update(unit); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update unit kerja"})
	}
	return c.JSON(fiber.Map{"message": "Unit kerja berhasil diperbarui", "data": unit})
}

func (h *UnitKerjaHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus unit kerja"})
	}
	return c.JSON(fiber.Map{"message": "Unit kerja berhasil dihapus"})
}
