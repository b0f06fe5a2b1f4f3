// Package requirement menentukan dokumen wajib per tipe pensiun dan
// kebijakan ukuran/tipe file unggahan.
package requirement

import "strings"

const (
	TipeBUP       = "bup"
	TipeSakit     = "sakit"
	TipeJandaDuda = "janda_duda"
	TipeAPS       = "aps"
)

// Tipe yang diterima API saat membuat pengajuan.
var KnownTypes = []string{TipeBUP, TipeSakit, TipeJandaDuda, TipeAPS}

var baseLabels = []string{
	"Surat Pengantar Kepala Satuan Kerja",
	"Data Perorangan Calon Penerima Pensiun (DPCP)",
	"SK CPNS",
	"SK PNS",
	"SK Kenaikan Pangkat Terakhir",
	"SK Jabatan Terakhir",
	"SKP 2 Tahun Terakhir",
	"Surat Pernyataan Tidak Pernah Dijatuhi Hukuman Disiplin",
	"Kartu Keluarga",
	"Pas Foto",
}

var (
	sakitLabels     = []string{"Surat Keterangan Tim Penguji Kesehatan"}
	jandaDudaLabels = []string{"Akta Kematian", "Suket Janda/Duda", "Pas Foto Pasangan"}
	apsLabels       = []string{"Surat Permohonan Pensiun Atas Permintaan Sendiri", "Surat Persetujuan Pejabat Pembina Kepegawaian"}
)

// BaseCount adalah jumlah dokumen wajib untuk semua tipe.
const BaseCount = 10

func IsKnownType(t string) bool {
	for _, k := range KnownTypes {
		if k == t {
			return true
		}
	}
	return false
}

// extraLabels adalah satu-satunya switch per tipe; label dan jumlah
// sama-sama diturunkan darinya.
func extraLabels(pensionType string) []string {
	switch strings.ToLower(strings.TrimSpace(pensionType)) {
	case TipeSakit:
		return sakitLabels
	case TipeJandaDuda:
		return jandaDudaLabels
	case TipeAPS:
		return apsLabels
	default:
		return nil
	}
}

// RequiredDocumentLabels mengembalikan daftar label dokumen wajib sesuai urutan.
func RequiredDocumentLabels(pensionType string) []string {
	extra := extraLabels(pensionType)
	labels := make([]string, 0, len(baseLabels)+len(extra))
	labels = append(labels, baseLabels...)
	return append(labels, extra...)
}

func RequiredDocumentCount(pensionType string) int {
	return len(baseLabels) + len(extraLabels(pensionType))
}

// Slot adalah satu baris checklist dokumen. Index adalah urutan (0-based) dan tidak pernah berubah.
type Slot struct {
	Index    int    `json:"index"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
	MaxBytes int64  `json:"max_bytes"`
}

func Slots(pensionType string) []Slot {
	labels := RequiredDocumentLabels(pensionType)
	slots := make([]Slot, len(labels))
	for i, l := range labels {
		slots[i] = Slot{Index: i, Label: l, Required: true, MaxBytes: MaxFileSize(l)}
	}
	return slots
}

// IndexOf mencari slot berdasarkan label (case-insensitive). -1 jika tidak ada.
func IndexOf(pensionType, label string) int {
	for i, l := range RequiredDocumentLabels(pensionType) {
		if strings.EqualFold(l, strings.TrimSpace(label)) {
			return i
		}
	}
	return -1
}
