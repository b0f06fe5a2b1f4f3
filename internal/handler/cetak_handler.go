package handler

import (
	"encoding/json"
	"errors"
	"strings"

	"sipensiun/internal/letter"
	"sipensiun/internal/metrics"
	"sipensiun/internal/render"
	"sipensiun/internal/requirement"
	"sipensiun/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CetakHandler struct {
	renderer   *render.Renderer
	stylesheet string
	surat      *usecase.SuratUsecase
	pengajuan  *usecase.PengajuanUsecase
	metrics    *metrics.Metrics
	log        *zap.Logger
}

type CetakDeps struct {
	Renderer   *render.Renderer
	Stylesheet string
	Surat      *usecase.SuratUsecase
	Pengajuan  *usecase.PengajuanUsecase
	Metrics    *metrics.Metrics
	Logger     *zap.Logger
}

func NewCetakHandler(d CetakDeps) *CetakHandler {
	return &CetakHandler{
		renderer:   d.Renderer,
		stylesheet: d.Stylesheet,
		surat:      d.Surat,
		pengajuan:  d.Pengajuan,
		metrics:    d.Metrics,
		log:        d.Logger,
	}
}

func (h *CetakHandler) send(c *fiber.Ctx, template, title, body string) error {
	doc, err := render.PrintDocument(render.PrintOptions{
		Title:         title,
		Origin:        h.renderer.Origin(),
		StylesheetURL: h.stylesheet,
		Body:          body,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.metrics.LettersRendered.WithLabelValues(template).Inc()
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(doc)
}

// Surat merender jenis surat dari body JSON (POST) atau ?data= (GET).
// Tanpa data, hasilnya formulir kosong dengan kop default.
func (h *CetakHandler) Surat(c *fiber.Ctx) error {
	kind := render.Kind(strings.ToLower(c.Params("jenis")))
	if !kind.Valid() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jenis surat tidak dikenal"})
	}

	body := c.Body()
	if c.Method() == fiber.MethodGet {
		body = []byte(c.Query("data"))
	}
	if len(body) > 0 && !json.Valid(body) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data surat bukan JSON yang valid"})
	}

	markup, err := h.renderer.RenderJSON(kind, body)
	if err != nil {
		if errors.Is(err, render.ErrUnknownKind) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jenis surat tidak dikenal"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.send(c, string(kind), kind.Title(), markup)
}

// Letter mencetak surat tersimpan dengan layout SPTJM.
func (h *CetakHandler) Letter(c *fiber.Ctx) error {
	w, err := h.surat.Get(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	l := letter.FromWire(w)
	markup, err := h.renderer.SPTJM(l.SPTJM())
	if err != nil {
		return respondError(c, h.log, err)
	}
	title := render.KindSPTJM.Title()
	if l.NomorSurat != "" {
		title += " " + l.NomorSurat
	}
	return h.send(c, string(render.KindSPTJM), title, markup)
}

// Checklist mencetak daftar periksa berkas satu pengajuan.
func (h *CetakHandler) Checklist(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	p, err := h.pengajuan.Get(actorOf(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}

	docs := map[string]*bool{}
	uploaded := map[string]bool{}
	for _, d := range p.Dokumen {
		key := strings.ToLower(d.JenisDokumen)
		uploaded[key] = true
		docs[key] = d.MemenuhiSyarat
	}

	slots := requirement.Slots(p.TipePensiun)
	items := make([]render.ChecklistItem, len(slots))
	for i, s := range slots {
		key := strings.ToLower(s.Label)
		items[i] = render.ChecklistItem{
			Index:     s.Index,
			Label:     s.Label,
			Required:  s.Required,
			Uploaded:  uploaded[key],
			Compliant: docs[key],
		}
	}

	markup, err := h.renderer.Checklist(render.ChecklistData{
		Header: render.DefaultHeader(),
		Title:  "Daftar Periksa Berkas Usul Pensiun",
		Pegawai: render.Person{
			Nama:            p.Nama,
			NIP:             p.NIP,
			PangkatGolongan: p.Pangkat,
			Jabatan:         p.Jabatan,
			UnitKerja:       p.UnitKerja,
		},
		Items: items,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return h.send(c, "checklist", "Daftar Periksa "+p.Nama, markup)
}
