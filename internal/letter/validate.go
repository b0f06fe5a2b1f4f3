package letter

import (
	"strings"
	"time"

	"sipensiun/internal/format"
	"sipensiun/internal/render"
)

// Validate mengembalikan pesan per field (kunci camelCase seperti di form).
// Map kosong berarti valid.
func Validate(l StoredLetter) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(l.NomorSurat) == "" {
		errs["nomorSurat"] = "Nomor Surat wajib diisi"
	}
	if strings.TrimSpace(l.NamaPegawai) == "" {
		errs["namaPegawai"] = "Nama pegawai wajib diisi"
	}
	if nip := format.StripNonDigits(l.NIPPegawai); nip == "" {
		errs["nipPegawai"] = "NIP pegawai wajib diisi"
	} else if len(nip) != 18 {
		errs["nipPegawai"] = "NIP harus 18 digit"
	}
	if l.NIPPenandatangan != "" && len(format.StripNonDigits(l.NIPPenandatangan)) != 18 {
		errs["nipPenandatangan"] = "NIP harus 18 digit"
	}
	for field, v := range map[string]string{"tanggalSurat": l.TanggalSurat, "signatureDateInput": l.SignatureDateInput} {
		if v == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", v); err != nil {
			errs[field] = "Tanggal tidak valid"
		}
	}
	if !l.SignatureMode.Valid() {
		errs["signatureMode"] = "Mode tanda tangan harus manual atau tte"
	}
	// Anchor diperiksa di semua mode.
	if !l.SignatureAnchor.Valid() {
		errs["signatureAnchor"] = "Anchor tanda tangan harus ^, $, atau #"
	}
	return errs
}

// Normalize merapikan field sebelum disimpan: NIP hanya digit, default mode manual.
func Normalize(l StoredLetter) StoredLetter {
	l.NomorSurat = strings.TrimSpace(l.NomorSurat)
	l.NamaPegawai = strings.TrimSpace(l.NamaPegawai)
	l.NIPPegawai = format.StripNonDigits(l.NIPPegawai)
	l.NIPPenandatangan = format.StripNonDigits(l.NIPPenandatangan)
	if l.SignatureMode == "" {
		l.SignatureMode = render.SignatureManual
	}
	if l.SignatureAnchor == "" {
		l.SignatureAnchor = render.AnchorCaret
	}
	return l
}
