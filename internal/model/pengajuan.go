package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusDraft    = "draft"
	StatusDiajukan = "diajukan"
	StatusDiterima = "diterima"
	StatusDitolak  = "ditolak"
)

const (
	JenisNormal     = "normal"
	JenisDipercepat = "dipercepat"
	JenisKhusus     = "khusus"
)

type PengajuanPensiun struct {
	gorm.Model
	PegawaiID    uint   `json:"pegawai_id" gorm:"index"`
	DibuatOleh   uint   `json:"dibuat_oleh"`
	Nama         string `json:"nama"`
	NIP          string `json:"nip" gorm:"column:nip;size:18;index"`
	Jabatan      string `json:"jabatan"`
	UnitKerja    string `json:"unit_kerja"`
	Pangkat      string `json:"pangkat"`
	JenisPensiun string `json:"jenis_pensiun"` // normal, dipercepat, khusus
	TipePensiun  string `json:"tipe_pensiun"`  // bup, sakit, janda_duda, aps
	TMTPensiun   string `json:"tmt_pensiun"`   // YYYY-MM-DD
	Status       string `json:"status" gorm:"default:draft;index"`
	Catatan      string `json:"catatan"` // Catatan penolakan dari verifikator

	DiajukanAt     *time.Time `json:"diajukan_at"`
	DiputuskanAt   *time.Time `json:"diputuskan_at"`
	DiputuskanOleh *uint      `json:"diputuskan_oleh"`

	Dokumen []DokumenPengajuan `json:"dokumen" gorm:"foreignKey:PengajuanID"`
}

// KepatuhanDokumen mengembalikan flag kepatuhan per dokumen sesuai urutan Dokumen.
func (p PengajuanPensiun) KepatuhanDokumen() []*bool {
	flags := make([]*bool, len(p.Dokumen))
	for i, d := range p.Dokumen {
		flags[i] = d.MemenuhiSyarat
	}
	return flags
}

type DokumenPengajuan struct {
	gorm.Model
	PengajuanID  uint   `json:"pengajuan_id" gorm:"uniqueIndex:idx_pengajuan_jenis"`
	NamaAsli     string `json:"nama_asli"`
	NamaFile     string `json:"nama_file"` // Key di storage (disk / S3)
	MimeType     string `json:"mime_type"`
	Ukuran       int64  `json:"ukuran"`
	JenisDokumen string `json:"jenis_dokumen" gorm:"size:191;uniqueIndex:idx_pengajuan_jenis"`
	Wajib        bool   `json:"wajib"`
	Keterangan   string `json:"keterangan"`

	// nil = belum diperiksa verifikator
	MemenuhiSyarat *bool `json:"memenuhi_syarat"`
}
