package usecase

import (
	"errors"

	"sipensiun/internal/letter"
	"sipensiun/internal/metrics"
	"sipensiun/internal/model"
	"sipensiun/internal/render"
	"sipensiun/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SuratUsecase struct {
	repo    repository.SuratRepository
	metrics *metrics.Metrics
}

func NewSuratUsecase(repo repository.SuratRepository, m *metrics.Metrics) *SuratUsecase {
	return &SuratUsecase{repo: repo, metrics: m}
}

// ToWire memetakan baris tabel surat ke format wire; ID publik adalah UUID.
func ToWire(s model.Surat) letter.Wire {
	id := s.PublicID
	return letter.Wire{
		ID:                   &id,
		NomorSurat:           s.NomorSurat,
		TanggalSurat:         s.TanggalSurat,
		NamaPegawai:          s.NamaPegawai,
		NIPPegawai:           s.NIPPegawai,
		PosisiPegawai:        s.PosisiPegawai,
		UnitPegawai:          s.UnitPegawai,
		NamaPenandatangan:    s.NamaPenandatangan,
		NIPPenandatangan:     s.NIPPenandatangan,
		JabatanPenandatangan: s.JabatanPenandatangan,
		SignaturePlace:       s.SignaturePlace,
		SignatureDateInput:   s.SignatureDateInput,
		SignatureMode:        render.SignatureMode(s.SignatureMode),
		SignatureAnchor:      render.Anchor(s.SignatureAnchor),
		TemplateVersion:      s.TemplateVersion,
	}
}

func applyWire(s *model.Surat, w letter.Wire) {
	s.NomorSurat = w.NomorSurat
	s.TanggalSurat = w.TanggalSurat
	s.NamaPegawai = w.NamaPegawai
	s.NIPPegawai = w.NIPPegawai
	s.PosisiPegawai = w.PosisiPegawai
	s.UnitPegawai = w.UnitPegawai
	s.NamaPenandatangan = w.NamaPenandatangan
	s.NIPPenandatangan = w.NIPPenandatangan
	s.JabatanPenandatangan = w.JabatanPenandatangan
	s.SignaturePlace = w.SignaturePlace
	s.SignatureDateInput = w.SignatureDateInput
	s.SignatureMode = string(w.SignatureMode)
	s.SignatureAnchor = string(w.SignatureAnchor)
	s.TemplateVersion = w.TemplateVersion
}

// normalize memvalidasi lewat bentuk StoredLetter lalu kembali ke wire.
func normalize(w letter.Wire) (letter.Wire, error) {
	l := letter.Normalize(letter.FromWire(w))
	if errs := letter.Validate(l); len(errs) > 0 {
		return w, invalid(errs)
	}
	return letter.ToWire(l), nil
}

func (u *SuratUsecase) List(page, limit int) ([]letter.Wire, int64, error) {
	rows, total, err := u.repo.GetAll(page, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]letter.Wire, len(rows))
	for i, r := range rows {
		out[i] = ToWire(r)
	}
	return out, total, nil
}

func (u *SuratUsecase) find(id string) (*model.Surat, error) {
	s, err := u.repo.FindByPublicID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return s, err
}

func (u *SuratUsecase) Get(id string) (letter.Wire, error) {
	s, err := u.find(id)
	if err != nil {
		return letter.Wire{}, err
	}
	return ToWire(*s), nil
}

func (u *SuratUsecase) Create(w letter.Wire) (letter.Wire, error) {
	w, err := normalize(w)
	if err != nil {
		return w, err
	}
	s := &model.Surat{PublicID: uuid.NewString()}
	applyWire(s, w)
	if err := u.repo.Create(s); err != nil {
		return w, err
	}
	u.metrics.LettersSaved.WithLabelValues("create").Inc()
	return ToWire(*s), nil
}

func (u *SuratUsecase) Update(id string, w letter.Wire) (letter.Wire, error) {
	s, err := u.find(id)
	if err != nil {
		return w, err
	}
	w, err = normalize(w)
	if err != nil {
		return w, err
	}
	applyWire(s, w)
	if err := u.repo.Update(s); err != nil {
		return w, err
	}
	u.metrics.LettersSaved.WithLabelValues("update").Inc()
	return ToWire(*s), nil
}

func (u *SuratUsecase) Delete(id string) error {
	err := u.repo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err == nil {
		u.metrics.LettersSaved.WithLabelValues("delete").Inc()
	}
	return err
}
