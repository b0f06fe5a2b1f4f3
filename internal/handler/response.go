package handler

import (
	"errors"
	"strconv"

	"sipensiun/internal/compliance"
	"sipensiun/internal/middleware"
	"sipensiun/internal/token"
	"sipensiun/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondError memetakan error usecase ke status HTTP dan body {"error": ...}.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validasi gagal", "fields": verr.Fields})
	case errors.Is(err, usecase.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data tidak ditemukan"})
	case errors.Is(err, usecase.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak"})
	case errors.Is(err, usecase.ErrInvalidTransition), errors.Is(err, usecase.ErrNotImpersonating):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, compliance.ErrInvalidDecision),
		errors.Is(err, compliance.ErrNotAllCompliant),
		errors.Is(err, compliance.ErrNotesRequired),
		errors.Is(err, compliance.ErrRejectAllCompliant):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	log.Error("request gagal", zap.String("path", c.Path()), zap.String("method", c.Method()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Terjadi kesalahan pada server"})
}

func paramID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
}

func actorOf(c *fiber.Ctx) usecase.Actor {
	return usecase.Actor{ID: middleware.UserID(c), Role: middleware.UserRole(c)}
}

func claimsOf(c *fiber.Ctx) *token.Claims {
	if claims := middleware.Claims(c); claims != nil {
		return claims
	}
	return &token.Claims{UserID: middleware.UserID(c), Role: middleware.UserRole(c)}
}
