package handler

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"

	"sipensiun/internal/cache"
	"sipensiun/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	minSearchRunes = 2
	searchLimit    = 20
)

type PegawaiHandler struct {
	repo  repository.ASNRepository
	cache *cache.Service
	log   *zap.Logger
}

func NewPegawaiHandler(repo repository.ASNRepository, c *cache.Service, log *zap.Logger) *PegawaiHandler {
	return &PegawaiHandler{repo: repo, cache: c, log: log}
}

type pegawaiItem struct {
	ID              string `json:"id"`
	Nama            string `json:"nama"`
	NIP             string `json:"nip"`
	Jabatan         string `json:"jabatan"`
	UnitKerja       string `json:"unit_kerja"`
	PangkatGolongan string `json:"pangkat_golongan"`
}

// Search: ?q= minimal 2 karakter, kurang dari itu hasilnya list kosong (bukan error).
func (h *PegawaiHandler) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(q) < minSearchRunes {
		return c.JSON(fiber.Map{"data": []pegawaiItem{}})
	}

	key := cache.GenerateKey("pegawai-search", map[string]string{"q": strings.ToLower(q)})
	if raw, ok := h.cache.General.Get(key); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(envelope(raw))
	}

	asns, err := h.repo.Search(q, searchLimit)
	if err != nil {
		return respondError(c, h.log, err)
	}
	items := make([]pegawaiItem, len(asns))
	for i, a := range asns {
		items[i] = pegawaiItem{
			ID:              strconv.FormatUint(uint64(a.ID), 10),
			Nama:            a.Nama,
			NIP:             a.NIP,
			Jabatan:         a.Jabatan,
			UnitKerja:       a.UnitKerja.NamaUnit,
			PangkatGolongan: a.PangkatGolongan(),
		}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.cache.General.Set(key, raw)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(envelope(raw))
}

func envelope(data json.RawMessage) []byte {
	out := make([]byte, 0, len(data)+10)
	out = append(out, `{"data":`...)
	out = append(out, data...)
	return append(out, '}')
}
