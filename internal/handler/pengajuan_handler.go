package handler

import (
	"strconv"
	"strings"
	"time"

	"sipensiun/internal/compliance"
	"sipensiun/internal/model"
	"sipensiun/internal/repository"
	"sipensiun/internal/requirement"
	"sipensiun/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PengajuanHandler struct {
	uc  *usecase.PengajuanUsecase
	log *zap.Logger
}

func NewPengajuanHandler(uc *usecase.PengajuanUsecase, log *zap.Logger) *PengajuanHandler {
	return &PengajuanHandler{uc: uc, log: log}
}

func timeString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func dokumenPayload(d model.DokumenPengajuan) fiber.Map {
	return fiber.Map{
		"id":              d.ID,
		"pengajuan_id":    d.PengajuanID,
		"nama_asli":       d.NamaAsli,
		"nama_file":       d.NamaFile,
		"mime_type":       d.MimeType,
		"ukuran":          d.Ukuran,
		"jenis_dokumen":   d.JenisDokumen,
		"wajib":           d.Wajib,
		"keterangan":      d.Keterangan,
		"memenuhi_syarat": d.MemenuhiSyarat,
		"created_at":      timeString(d.CreatedAt),
		"updated_at":      timeString(d.UpdatedAt),
	}
}

func pengajuanPayload(p *model.PengajuanPensiun) fiber.Map {
	return fiber.Map{
		"id":              p.ID,
		"pegawai_id":      p.PegawaiID,
		"dibuat_oleh":     p.DibuatOleh,
		"nama":            p.Nama,
		"nip":             p.NIP,
		"jabatan":         p.Jabatan,
		"unit_kerja":      p.UnitKerja,
		"pangkat":         p.Pangkat,
		"jenis_pensiun":   p.JenisPensiun,
		"tipe_pensiun":    p.TipePensiun,
		"tmt_pensiun":     p.TMTPensiun,
		"status":          p.Status,
		"catatan":         p.Catatan,
		"diajukan_at":     p.DiajukanAt,
		"diputuskan_at":   p.DiputuskanAt,
		"diputuskan_oleh": p.DiputuskanOleh,
		"created_at":      timeString(p.CreatedAt),
		"updated_at":      timeString(p.UpdatedAt),
	}
}

// detailPayload menambahkan dokumen, checklist slot, dan status kepatuhan agregat.
func detailPayload(p *model.PengajuanPensiun) fiber.Map {
	out := pengajuanPayload(p)

	docs := make([]fiber.Map, len(p.Dokumen))
	byLabel := map[string]model.DokumenPengajuan{}
	for i, d := range p.Dokumen {
		docs[i] = dokumenPayload(d)
		byLabel[strings.ToLower(d.JenisDokumen)] = d
	}

	slots := requirement.Slots(p.TipePensiun)
	checklist := make([]fiber.Map, len(slots))
	for i, s := range slots {
		item := fiber.Map{"index": s.Index, "label": s.Label, "required": s.Required, "max_bytes": s.MaxBytes, "dokumen_id": nil}
		if d, ok := byLabel[strings.ToLower(s.Label)]; ok {
			item["dokumen_id"] = d.ID
			item["memenuhi_syarat"] = d.MemenuhiSyarat
		}
		checklist[i] = item
	}

	out["dokumen"] = docs
	out["checklist"] = checklist
	out["kepatuhan"] = compliance.Evaluate(p.KepatuhanDokumen())
	return out
}

func (h *PengajuanHandler) List(c *fiber.Ctx) error {
	filter := repository.PengajuanFilter{
		Status: c.Query("status"),
		Search: strings.TrimSpace(c.Query("search")),
	}
	if v, err := strconv.ParseUint(c.Query("pegawai_id"), 10, 64); err == nil {
		filter.PegawaiID = uint(v)
	}

	list, err := h.uc.List(actorOf(c), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	out := make([]fiber.Map, len(list))
	for i := range list {
		out[i] = pengajuanPayload(&list[i])
	}
	return c.JSON(fiber.Map{"data": out})
}

func (h *PengajuanHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	p, err := h.uc.Get(actorOf(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"data": detailPayload(p)})
}

func (h *PengajuanHandler) Create(c *fiber.Ctx) error {
	var in usecase.PengajuanInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	p, err := h.uc.Create(actorOf(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Pengajuan berhasil dibuat", "data": detailPayload(p)})
}

func (h *PengajuanHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in usecase.PengajuanInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	p, err := h.uc.Update(actorOf(c), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Pengajuan berhasil diperbarui", "data": detailPayload(p)})
}

func (h *PengajuanHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), actorOf(c), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Pengajuan berhasil dihapus"})
}

func (h *PengajuanHandler) Submit(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	p, err := h.uc.Submit(actorOf(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Pengajuan berhasil diajukan", "data": detailPayload(p)})
}

type StatusRequest struct {
	Status  string `json:"status"`
	Catatan string `json:"catatan"`
}

// UpdateStatus: keputusan verifikator, gerbang kepatuhan dijalankan di usecase.
func (h *PengajuanHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	p, err := h.uc.Decide(c.UserContext(), actorOf(c), id, strings.ToLower(strings.TrimSpace(req.Status)), req.Catatan)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Status pengajuan diperbarui", "data": detailPayload(p)})
}
