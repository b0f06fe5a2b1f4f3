package usecase

import (
	"testing"

	"sipensiun/internal/letter"
	"sipensiun/internal/metrics"
	"sipensiun/internal/render"
	"sipensiun/internal/repository/repotest"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuratLifecycle(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	uc := NewSuratUsecase(repotest.New().Surat(), m)

	in := letter.ToWire(letter.StoredLetter{
		NomorSurat:    "125/Kw.18.01/KP.01.1/09/2025",
		TanggalSurat:  "2025-09-01",
		NamaPegawai:   "Ahmad Fauzi",
		NIPPegawai:    "19650101 199003 1 001",
		SignatureMode: render.SignatureTTE,
	})

	created, err := uc.Create(in)
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Len(t, *created.ID, 36)
	assert.Equal(t, "196501011990031001", created.NIPPegawai)
	assert.Equal(t, render.AnchorCaret, created.SignatureAnchor)
	assert.Nil(t, created.PosisiPegawai)

	got, err := uc.Get(*created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	got.NomorSurat = "126/Kw.18.01/KP.01.1/09/2025"
	updated, err := uc.Update(*created.ID, got)
	require.NoError(t, err)
	assert.Equal(t, "126/Kw.18.01/KP.01.1/09/2025", updated.NomorSurat)
	assert.Equal(t, *created.ID, *updated.ID)

	list, total, err := uc.List(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)

	require.NoError(t, uc.Delete(*created.ID))
	assert.ErrorIs(t, uc.Delete(*created.ID), ErrNotFound)
	_, err = uc.Get(*created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LettersSaved.WithLabelValues("create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LettersSaved.WithLabelValues("update")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LettersSaved.WithLabelValues("delete")))
}

func TestSuratValidation(t *testing.T) {
	uc := NewSuratUsecase(repotest.New().Surat(), metrics.New(prometheus.NewRegistry()))
	_, err := uc.Create(letter.Wire{NIPPegawai: "12", SignatureMode: "stempel"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Nomor Surat wajib diisi", verr.Fields["nomorSurat"])
	assert.Equal(t, "NIP harus 18 digit", verr.Fields["nipPegawai"])
	assert.Contains(t, verr.Fields, "signatureMode")
}

func TestSuratRejectsUnknownAnchorInManualMode(t *testing.T) {
	uc := NewSuratUsecase(repotest.New().Surat(), metrics.New(prometheus.NewRegistry()))
	_, err := uc.Create(letter.Wire{
		NomorSurat:      "7/Kw.18.01/09/2025",
		NamaPegawai:     "Siti Aminah",
		NIPPegawai:      "196603151991032002",
		SignatureMode:   render.SignatureManual,
		SignatureAnchor: "x",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "signatureAnchor")
}
