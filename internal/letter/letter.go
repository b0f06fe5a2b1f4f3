// Package letter memetakan surat antara bentuk UI (camelCase) dan bentuk wire
// backend (snake_case), serta menyediakan strategi penyimpanan remote/lokal.
package letter

import (
	"sipensiun/internal/render"
)

// StoredLetter adalah bentuk surat yang dipakai halaman generator.
type StoredLetter struct {
	ID                   string               `json:"id"`
	NomorSurat           string               `json:"nomorSurat"`
	TanggalSurat         string               `json:"tanggalSurat"`
	NamaPegawai          string               `json:"namaPegawai"`
	NIPPegawai           string               `json:"nipPegawai"`
	PosisiPegawai        string               `json:"posisiPegawai"`
	UnitPegawai          string               `json:"unitPegawai"`
	NamaPenandatangan    string               `json:"namaPenandatangan"`
	NIPPenandatangan     string               `json:"nipPenandatangan"`
	JabatanPenandatangan string               `json:"jabatanPenandatangan"`
	SignaturePlace       string               `json:"signaturePlace"`
	SignatureDateInput   string               `json:"signatureDateInput"`
	SignatureMode        render.SignatureMode `json:"signatureMode"`
	SignatureAnchor      render.Anchor        `json:"signatureAnchor"`
	TemplateVersion      string               `json:"templateVersion"`
}

// Wire adalah kontrak snake_case dengan backend. Field opsional bernilai null
// bila kosong, tidak pernah dihilangkan.
type Wire struct {
	ID                   *string              `json:"id"`
	NomorSurat           string               `json:"nomor_surat"`
	TanggalSurat         *string              `json:"tanggal_surat"`
	NamaPegawai          string               `json:"nama_pegawai"`
	NIPPegawai           string               `json:"nip_pegawai"`
	PosisiPegawai        *string              `json:"posisi_pegawai"`
	UnitPegawai          *string              `json:"unit_pegawai"`
	NamaPenandatangan    *string              `json:"nama_penandatangan"`
	NIPPenandatangan     *string              `json:"nip_penandatangan"`
	JabatanPenandatangan *string              `json:"jabatan_penandatangan"`
	SignaturePlace       *string              `json:"signature_place"`
	SignatureDateInput   *string              `json:"signature_date_input"`
	SignatureMode        render.SignatureMode `json:"signature_mode"`
	SignatureAnchor      render.Anchor        `json:"signature_anchor"`
	TemplateVersion      *string              `json:"template_version"`
}

func ToWire(l StoredLetter) Wire {
	return Wire{
		ID:                   opt(l.ID),
		NomorSurat:           l.NomorSurat,
		TanggalSurat:         opt(l.TanggalSurat),
		NamaPegawai:          l.NamaPegawai,
		NIPPegawai:           l.NIPPegawai,
		PosisiPegawai:        opt(l.PosisiPegawai),
		UnitPegawai:          opt(l.UnitPegawai),
		NamaPenandatangan:    opt(l.NamaPenandatangan),
		NIPPenandatangan:     opt(l.NIPPenandatangan),
		JabatanPenandatangan: opt(l.JabatanPenandatangan),
		SignaturePlace:       opt(l.SignaturePlace),
		SignatureDateInput:   opt(l.SignatureDateInput),
		SignatureMode:        l.SignatureMode,
		SignatureAnchor:      l.SignatureAnchor,
		TemplateVersion:      opt(l.TemplateVersion),
	}
}

func FromWire(w Wire) StoredLetter {
	return StoredLetter{
		ID:                   deref(w.ID),
		NomorSurat:           w.NomorSurat,
		TanggalSurat:         deref(w.TanggalSurat),
		NamaPegawai:          w.NamaPegawai,
		NIPPegawai:           w.NIPPegawai,
		PosisiPegawai:        deref(w.PosisiPegawai),
		UnitPegawai:          deref(w.UnitPegawai),
		NamaPenandatangan:    deref(w.NamaPenandatangan),
		NIPPenandatangan:     deref(w.NIPPenandatangan),
		JabatanPenandatangan: deref(w.JabatanPenandatangan),
		SignaturePlace:       deref(w.SignaturePlace),
		SignatureDateInput:   deref(w.SignatureDateInput),
		SignatureMode:        w.SignatureMode,
		SignatureAnchor:      w.SignatureAnchor,
		TemplateVersion:      deref(w.TemplateVersion),
	}
}

func opt(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Signature mengubah data penandatangan surat menjadi blok tanda tangan template.
func (l StoredLetter) Signature() render.Signature {
	return render.Signature{
		Place:  l.SignaturePlace,
		Date:   l.SignatureDateInput,
		Title:  l.JabatanPenandatangan,
		Name:   l.NamaPenandatangan,
		NIP:    l.NIPPenandatangan,
		Mode:   l.SignatureMode,
		Anchor: l.SignatureAnchor,
	}
}

// SPTJM memetakan surat tersimpan ke data template SPTJM dengan kop default.
func (l StoredLetter) SPTJM() render.SPTJMData {
	return render.SPTJMData{
		Header:     render.DefaultHeader(),
		NomorSurat: l.NomorSurat,
		Penandatangan: render.Person{
			Nama:    l.NamaPenandatangan,
			NIP:     l.NIPPenandatangan,
			Jabatan: l.JabatanPenandatangan,
		},
		Pegawai: render.Person{
			Nama:      l.NamaPegawai,
			NIP:       l.NIPPegawai,
			Jabatan:   l.PosisiPegawai,
			UnitKerja: l.UnitPegawai,
		},
		Signature: l.Signature(),
	}
}
