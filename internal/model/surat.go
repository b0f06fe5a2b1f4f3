package model

import "gorm.io/gorm"

// Surat adalah baris tabel surat hasil generator (SPTJM, pengantar, dll).
// Kolom sengaja sama dengan format wire snake_case.
type Surat struct {
	gorm.Model
	PublicID             string  `gorm:"column:public_id;size:36;uniqueIndex"`
	NomorSurat           string  `gorm:"column:nomor_surat"`
	TanggalSurat         *string `gorm:"column:tanggal_surat"`
	NamaPegawai          string  `gorm:"column:nama_pegawai"`
	NIPPegawai           string  `gorm:"column:nip_pegawai;size:18;index"`
	PosisiPegawai        *string `gorm:"column:posisi_pegawai"`
	UnitPegawai          *string `gorm:"column:unit_pegawai"`
	NamaPenandatangan    *string `gorm:"column:nama_penandatangan"`
	NIPPenandatangan     *string `gorm:"column:nip_penandatangan"`
	JabatanPenandatangan *string `gorm:"column:jabatan_penandatangan"`
	SignaturePlace       *string `gorm:"column:signature_place"`
	SignatureDateInput   *string `gorm:"column:signature_date_input"`
	SignatureMode        string  `gorm:"column:signature_mode;default:manual"`
	SignatureAnchor      string  `gorm:"column:signature_anchor;default:^"`
	TemplateVersion      *string `gorm:"column:template_version"`
}

func (Surat) TableName() string {
	return "surat"
}
