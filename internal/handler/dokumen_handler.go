package handler

import (
	"strconv"

	"sipensiun/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DokumenHandler struct {
	uc  *usecase.PengajuanUsecase
	log *zap.Logger
}

func NewDokumenHandler(uc *usecase.PengajuanUsecase, log *zap.Logger) *DokumenHandler {
	return &DokumenHandler{uc: uc, log: log}
}

// Upload: multipart pengajuan_id, file, document_type, required, note.
// Field "required" diterima untuk kompatibilitas klien; wajib/tidak ditentukan oleh tipe pensiun.
func (h *DokumenHandler) Upload(c *fiber.Ctx) error {
	pengajuanID, err := strconv.ParseUint(c.FormValue("pengajuan_id"), 10, 64)
	if err != nil || pengajuanID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "pengajuan_id tidak valid"})
	}
	docType := c.FormValue("document_type")
	if docType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "document_type wajib diisi"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File wajib diunggah"})
	}
	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File tidak bisa dibaca"})
	}
	defer f.Close()

	doc, err := h.uc.Upload(c.UserContext(), actorOf(c), usecase.UploadInput{
		PengajuanID:  uint(pengajuanID),
		DocumentType: docType,
		Note:         c.FormValue("note"),
		Filename:     file.Filename,
		Content:      f,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Dokumen berhasil diunggah", "data": dokumenPayload(*doc)})
}

func (h *DokumenHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.DeleteDokumen(c.UserContext(), actorOf(c), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Dokumen berhasil dihapus"})
}

type KepatuhanRequest struct {
	MemenuhiSyarat *bool `json:"memenuhi_syarat"`
}

// SetKepatuhan: null mengembalikan dokumen ke status belum diperiksa.
func (h *DokumenHandler) SetKepatuhan(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var req KepatuhanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	doc, state, err := h.uc.SetKepatuhan(actorOf(c), id, req.MemenuhiSyarat)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{
		"message": "Kepatuhan dokumen diperbarui",
		"data":    fiber.Map{"dokumen": dokumenPayload(*doc), "kepatuhan": state},
	})
}
