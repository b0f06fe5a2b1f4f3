package handler

import (
	"strconv"

	"sipensiun/internal/letter"
	"sipensiun/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultPageSize = 20

type SuratHandler struct {
	uc  *usecase.SuratUsecase
	log *zap.Logger
}

func NewSuratHandler(uc *usecase.SuratUsecase, log *zap.Logger) *SuratHandler {
	return &SuratHandler{uc: uc, log: log}
}

// List: ?all=true mengembalikan semua surat tanpa paginasi.
func (h *SuratHandler) List(c *fiber.Ctx) error {
	page, limit := 1, defaultPageSize
	if c.QueryBool("all") {
		limit = 0
	} else {
		if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
			page = v
		}
		if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
			limit = v
		}
	}

	letters, total, err := h.uc.List(page, limit)
	if err != nil {
		return respondError(c, h.log, err)
	}
	resp := fiber.Map{"data": letters, "total": total}
	if limit > 0 {
		resp["page"] = page
		resp["limit"] = limit
	}
	return c.JSON(resp)
}

func (h *SuratHandler) Get(c *fiber.Ctx) error {
	w, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"data": w})
}

func (h *SuratHandler) Create(c *fiber.Ctx) error {
	var w letter.Wire
	if err := c.BodyParser(&w); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	saved, err := h.uc.Create(w)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Surat berhasil disimpan", "data": saved})
}

func (h *SuratHandler) Update(c *fiber.Ctx) error {
	var w letter.Wire
	if err := c.BodyParser(&w); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	saved, err := h.uc.Update(c.Params("id"), w)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Surat berhasil diperbarui", "data": saved})
}

func (h *SuratHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Surat berhasil dihapus"})
}
