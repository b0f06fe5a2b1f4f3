package handler

import (
	"strconv"
	"strings"
	"time"

	"sipensiun/internal/format"
	"sipensiun/internal/requirement"

	"github.com/gofiber/fiber/v2"
)

type ReferensiHandler struct {
	kodeSurat []string
	now       func() time.Time
}

func NewReferensiHandler(kodeSurat []string) *ReferensiHandler {
	return &ReferensiHandler{kodeSurat: kodeSurat, now: time.Now}
}

// Dokumen: daftar slot dokumen wajib untuk ?tipe=.
func (h *ReferensiHandler) Dokumen(c *fiber.Ctx) error {
	tipe := strings.ToLower(strings.TrimSpace(c.Query("tipe")))
	if !requirement.IsKnownType(tipe) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Tipe pensiun harus " + strings.Join(requirement.KnownTypes, ", "),
		})
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"tipe":  tipe,
			"count": requirement.RequiredDocumentCount(tipe),
			"slots": requirement.Slots(tipe),
		},
	})
}

// NomorSurat menyusun nomor dari ?urut= dan ?tanggal=YYYY-MM-DD
// (atau ?bulan= dan ?tahun=). Tanpa tanggal dipakai bulan berjalan.
func (h *ReferensiHandler) NomorSurat(c *fiber.Ctx) error {
	urut, err := format.ParseLetterSequence(c.Query("urut"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validasi gagal",
			"fields": fiber.Map{"nomorSurat": err.Error()},
		})
	}

	bulan, tahun := c.Query("bulan"), c.Query("tahun")
	if tanggal := c.Query("tanggal"); tanggal != "" {
		t, err := time.Parse("2006-01-02", tanggal)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validasi gagal",
				"fields": fiber.Map{"tanggalSurat": "Tanggal tidak valid"},
			})
		}
		bulan, tahun = strconv.Itoa(int(t.Month())), strconv.Itoa(t.Year())
	}
	if bulan == "" && tahun == "" {
		now := h.now()
		bulan, tahun = strconv.Itoa(int(now.Month())), strconv.Itoa(now.Year())
	}

	kode := h.kodeSurat
	if raw := c.Query("kode"); raw != "" {
		kode = strings.Split(raw, ",")
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"nomor_surat": format.ComposeLetterNumber(urut, bulan, tahun, kode)},
	})
}
