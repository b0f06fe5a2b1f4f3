package handler

import (
	"errors"
	"strings"

	"sipensiun/internal/format"
	"sipensiun/internal/model"
	"sipensiun/internal/repository"
	"sipensiun/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type ASNHandler struct {
	auth *usecase.AuthUsecase
	repo repository.ASNRepository
	log  *zap.Logger
}

func NewASNHandler(auth *usecase.AuthUsecase, repo repository.ASNRepository, log *zap.Logger) *ASNHandler {
	return &ASNHandler{auth: auth, repo: repo, log: log}
}

type LoginRequest struct {
	NIP      string `json:"nip"`
	Password string `json:"password"`
}

func userPayload(asn *model.ASN) fiber.Map {
	return fiber.Map{
		"id":          asn.ID,
		"nip":         asn.NIP,
		"nama":        asn.Nama,
		"email":       asn.Email,
		"role":        asn.Role.NamaRole,
		"jabatan":     asn.Jabatan,
		"unit_kerja":  asn.UnitKerja.NamaUnit,
		"permissions": permissionNames(asn.Role),
	}
}

func permissionNames(r model.Role) []string {
	names := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		names = append(names, p.NamaPermission)
	}
	return names
}

func (h *ASNHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	token, asn, err := h.auth.Login(format.StripNonDigits(req.NIP), req.Password)
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "NIP atau Password salah"})
	case errors.Is(err, usecase.ErrInactive):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akun tidak aktif"})
	case err != nil:
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"data":    userPayload(asn),
	})
}

func (h *ASNHandler) Me(c *fiber.Ctx) error {
	asn, err := h.auth.Me(actorOf(c).ID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	payload := userPayload(asn)
	if imp, _ := c.Locals("impersonator_id").(uint); imp != 0 {
		payload["impersonator_id"] = imp
	}
	return c.JSON(fiber.Map{"data": payload})
}

func (h *ASNHandler) Impersonate(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	claims := claimsOf(c)
	token, target, err := h.auth.Impersonate(claims, id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info("impersonasi dimulai", zap.Uint("superadmin_id", claims.UserID), zap.Uint("target_id", target.ID))
	return c.JSON(fiber.Map{
		"message": "Impersonasi dimulai",
		"data":    fiber.Map{"token": token, "user": userPayload(target)},
	})
}

func (h *ASNHandler) StopImpersonation(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	token, origin, err := h.auth.StopImpersonation(claimsOf(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{
		"message": "Impersonasi dihentikan",
		"data":    fiber.Map{"token": token, "user": userPayload(origin)},
	})
}

// ListUsers: daftar akun untuk admin, filter ?search= dan ?role=.
func (h *ASNHandler) ListUsers(c *fiber.Ctx) error {
	asns, err := h.repo.GetAll(repository.ASNFilter{
		Search: strings.TrimSpace(c.Query("search")),
		Role:   c.Query("role"),
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	out := make([]fiber.Map, len(asns))
	for i := range asns {
		out[i] = userPayload(&asns[i])
	}
	return c.JSON(fiber.Map{"data": out})
}

type CreateASNRequest struct {
	Nama         string `json:"nama"`
	NIP          string `json:"nip"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	Jabatan      string `json:"jabatan"`
	Pangkat      string `json:"pangkat"`
	Golongan     string `json:"golongan"`
	TanggalLahir string `json:"tanggal_lahir"`
	RoleID       uint   `json:"role_id"`
	UnitKerjaID  uint   `json:"unit_kerja_id"`
}

func (h *ASNHandler) CreateASN(c *fiber.Ctx) error {
	var req CreateASNRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	fields := map[string]string{}
	nip := format.StripNonDigits(req.NIP)
	if strings.TrimSpace(req.Nama) == "" {
		fields["nama"] = "Nama wajib diisi"
	}
	if len(nip) != 18 {
		fields["nip"] = "NIP harus 18 digit"
	}
	if len(req.Password) < 8 {
		fields["password"] = "Password minimal 8 karakter"
	}
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validasi gagal", "fields": fields})
	}

	hashed, err := usecase.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengenkripsi password"})
	}

	asn := model.ASN{
		Nama:         strings.TrimSpace(req.Nama),
		NIP:          nip,
		Password:     hashed,
		Email:        req.Email,
		Jabatan:      req.Jabatan,
		Pangkat:      req.Pangkat,
		Golongan:     req.Golongan,
		TanggalLahir: req.TanggalLahir,
		RoleID:       req.RoleID,
		UnitKerjaID:  req.UnitKerjaID,
		IsActive:     true,
	}
	if err := h.repo.Create(&asn); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Gagal menyimpan pegawai, NIP mungkin sudah terdaftar"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Pegawai berhasil ditambahkan", "data": asn})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (h *ASNHandler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if len(req.NewPassword) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validasi gagal", "fields": fiber.Map{"new_password": "Password minimal 8 karakter"}})
	}

	asn, err := h.repo.FindByID(actorOf(c).ID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	// Cek password lama
	if err := bcrypt.CompareHashAndPassword([]byte(asn.Password), []byte(req.OldPassword)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password lama salah"})
	}

	hashed, err := usecase.HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengenkripsi password"})
	}
	asn.Password = hashed
	if err := h.repo.Update(asn); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update password"})
	}

	return c.JSON(fiber.Map{"message": "Password berhasil diubah"})
}
