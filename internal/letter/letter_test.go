package letter

import (
	"encoding/json"
	"testing"

	"sipensiun/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLetter() StoredLetter {
	return StoredLetter{
		ID:                   "c0a8-1",
		NomorSurat:           "125/Kw.18.01/KP.01.1/09/2025",
		TanggalSurat:         "2025-09-01",
		NamaPegawai:          "Ahmad Fauzi",
		NIPPegawai:           "196501011990031001",
		PosisiPegawai:        "Penghulu Ahli Madya",
		UnitPegawai:          "KUA Kecamatan Sukajadi",
		NamaPenandatangan:    "Drs. H. Muhammad Nur",
		NIPPenandatangan:     "197002021995031002",
		JabatanPenandatangan: "Kepala Kantor Wilayah",
		SignaturePlace:       "Pekanbaru",
		SignatureDateInput:   "2025-09-02",
		SignatureMode:        render.SignatureTTE,
		SignatureAnchor:      render.AnchorHash,
		TemplateVersion:      "sptjm-v2",
	}
}

func TestWireRoundTrip(t *testing.T) {
	cases := map[string]StoredLetter{
		"lengkap": sampleLetter(),
		"minimal": {NomorSurat: "1", NamaPegawai: "X", NIPPegawai: "1", SignatureMode: render.SignatureManual},
		"kosong":  {},
	}
	for name, l := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, l, FromWire(ToWire(l)))
		})
	}
}

func TestWireOptionalFieldsAreNull(t *testing.T) {
	l := StoredLetter{NomorSurat: "7", NamaPegawai: "Siti", NIPPegawai: "123", SignatureMode: render.SignatureManual}

	b, err := json.Marshal(ToWire(l))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	for _, key := range []string{"id", "tanggal_surat", "posisi_pegawai", "unit_pegawai", "nama_penandatangan",
		"nip_penandatangan", "jabatan_penandatangan", "signature_place", "signature_date_input", "template_version"} {
		v, ok := m[key]
		assert.True(t, ok, "%s harus ada", key)
		assert.Nil(t, v, "%s harus null", key)
	}
	assert.Equal(t, "7", m["nomor_surat"])
	assert.Equal(t, "manual", m["signature_mode"])
}

func TestWireJSONUsesSnakeCase(t *testing.T) {
	var w Wire
	require.NoError(t, json.Unmarshal([]byte(`{
		"id":"abc","nomor_surat":"12/2025","tanggal_surat":"2025-01-02",
		"nama_pegawai":"Budi","nip_pegawai":"199001012020121001",
		"posisi_pegawai":null,"signature_mode":"tte","signature_anchor":"$"
	}`), &w))

	l := FromWire(w)
	assert.Equal(t, "abc", l.ID)
	assert.Equal(t, "12/2025", l.NomorSurat)
	assert.Equal(t, "", l.PosisiPegawai)
	assert.Equal(t, render.SignatureTTE, l.SignatureMode)
	assert.Equal(t, render.AnchorDollar, l.SignatureAnchor)
}

func TestSignatureFromLetter(t *testing.T) {
	sig := sampleLetter().Signature()
	assert.Equal(t, "Pekanbaru", sig.Place)
	assert.Equal(t, "Kepala Kantor Wilayah", sig.Title)
	assert.Equal(t, "#", sig.AnchorGlyph())
}

func TestValidate(t *testing.T) {
	assert.Empty(t, Validate(sampleLetter()))

	errs := Validate(StoredLetter{
		NIPPegawai:         "1234",
		TanggalSurat:       "2025-13-40",
		SignatureDateInput: "kemarin",
		SignatureMode:      "basah",
	})
	assert.Equal(t, "Nomor Surat wajib diisi", errs["nomorSurat"])
	assert.Equal(t, "Nama pegawai wajib diisi", errs["namaPegawai"])
	assert.Equal(t, "NIP harus 18 digit", errs["nipPegawai"])
	assert.Equal(t, "Tanggal tidak valid", errs["tanggalSurat"])
	assert.Equal(t, "Tanggal tidak valid", errs["signatureDateInput"])
	assert.Contains(t, errs, "signatureMode")

	l := sampleLetter()
	l.SignatureAnchor = "@"
	assert.Contains(t, Validate(l), "signatureAnchor")

	l = sampleLetter()
	l.SignatureMode = render.SignatureManual
	l.SignatureAnchor = "x"
	assert.Equal(t, "Anchor tanda tangan harus ^, $, atau #", Validate(l)["signatureAnchor"])
}

func TestNormalize(t *testing.T) {
	l := Normalize(StoredLetter{NomorSurat: " 12 ", NIPPegawai: "19650101 199003 1 001"})
	assert.Equal(t, "12", l.NomorSurat)
	assert.Equal(t, "196501011990031001", l.NIPPegawai)
	assert.Equal(t, render.SignatureManual, l.SignatureMode)
	assert.Equal(t, render.AnchorCaret, l.SignatureAnchor)
}
