package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"sipensiun/internal/compliance"
	"sipensiun/internal/metrics"
	"sipensiun/internal/model"
	"sipensiun/internal/notify"
	"sipensiun/internal/repository"
	"sipensiun/internal/repository/repotest"
	"sipensiun/internal/requirement"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var (
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notify.Decision
}

func (r *recordingNotifier) NotifyDecision(_ context.Context, d notify.Decision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, d)
	return nil
}

type PengajuanSuite struct {
	suite.Suite
	store    *repotest.Store
	files    *repotest.MemStorage
	notifier *recordingNotifier
	metrics  *metrics.Metrics
	uc       *PengajuanUsecase

	operator Actor
	reviewer Actor
	pegawai  model.ASN
}

func TestPengajuanSuite(t *testing.T) {
	suite.Run(t, new(PengajuanSuite))
}

func (s *PengajuanSuite) SetupTest() {
	s.store = repotest.New()
	s.files = repotest.NewMemStorage()
	s.notifier = &recordingNotifier{}
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.uc = NewPengajuanUsecase(PengajuanDeps{
		Pengajuan: s.store.Pengajuan(),
		Dokumen:   s.store.Dokumen(),
		ASN:       s.store.ASN(),
		Storage:   s.files,
		Notifier:  s.notifier,
		Metrics:   s.metrics,
		Now:       func() time.Time { return time.Date(2025, 9, 2, 10, 0, 0, 0, time.UTC) },
	})

	s.operator = Actor{ID: 100, Role: model.RoleOperator}
	s.reviewer = Actor{ID: 200, Role: model.RoleVerifikator}
	s.pegawai = s.store.AddASN(model.ASN{
		Nama: "Ahmad Fauzi", NIP: "196501011990031001", Email: "ahmad@example.go.id",
		Jabatan: "Penghulu Ahli Madya", Pangkat: "Pembina", Golongan: "IV/a", IsActive: true,
	})
}

func (s *PengajuanSuite) create(tipe string) *model.PengajuanPensiun {
	p, err := s.uc.Create(s.operator, PengajuanInput{
		PegawaiID:    s.pegawai.ID,
		JenisPensiun: model.JenisNormal,
		TipePensiun:  tipe,
		TMTPensiun:   "2026-01-01",
	})
	s.Require().NoError(err)
	return p
}

func (s *PengajuanSuite) uploadAll(p *model.PengajuanPensiun) {
	for _, label := range requirement.RequiredDocumentLabels(p.TipePensiun) {
		_, err := s.uc.Upload(context.Background(), s.operator, UploadInput{
			PengajuanID:  p.ID,
			DocumentType: label,
			Filename:     "berkas.pdf",
			Content:      bytes.NewReader(pdfBytes),
		})
		s.Require().NoError(err, label)
	}
}

func (s *PengajuanSuite) submitted(tipe string) *model.PengajuanPensiun {
	p := s.create(tipe)
	s.uploadAll(p)
	p, err := s.uc.Submit(s.operator, p.ID)
	s.Require().NoError(err)
	return p
}

func (s *PengajuanSuite) markAll(p *model.PengajuanPensiun, value bool) {
	full, err := s.uc.Get(s.reviewer, p.ID)
	s.Require().NoError(err)
	for _, d := range full.Dokumen {
		v := value
		_, _, err := s.uc.SetKepatuhan(s.reviewer, d.ID, &v)
		s.Require().NoError(err)
	}
}

func (s *PengajuanSuite) TestCreateFillsFromPegawai() {
	p := s.create(requirement.TipeBUP)
	s.Equal("Ahmad Fauzi", p.Nama)
	s.Equal("196501011990031001", p.NIP)
	s.Equal("Pembina (IV/a)", p.Pangkat)
	s.Equal(model.StatusDraft, p.Status)
	s.Equal(s.operator.ID, p.DibuatOleh)
}

func (s *PengajuanSuite) TestCreateValidation() {
	_, err := s.uc.Create(s.operator, PengajuanInput{NIP: "123", JenisPensiun: "cepat", TipePensiun: "pindah", TMTPensiun: "01-01-2026"})
	var verr *ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal("Nama wajib diisi", verr.Fields["nama"])
	s.Equal("NIP harus 18 digit", verr.Fields["nip"])
	s.Contains(verr.Fields, "jenis_pensiun")
	s.Contains(verr.Fields, "tipe_pensiun")
	s.Equal("Tanggal tidak valid", verr.Fields["tmt_pensiun"])
}

func (s *PengajuanSuite) TestSubmitRequiresAllDocuments() {
	p := s.create(requirement.TipeJandaDuda)
	_, err := s.uc.Upload(context.Background(), s.operator, UploadInput{
		PengajuanID: p.ID, DocumentType: "SK CPNS", Filename: "sk.pdf", Content: bytes.NewReader(pdfBytes),
	})
	s.Require().NoError(err)

	_, err = s.uc.Submit(s.operator, p.ID)
	var verr *ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Len(verr.Fields, 12)
	s.Equal("Pas Foto Pasangan belum diunggah", verr.Fields["12"])
}

func (s *PengajuanSuite) TestUploadValidation() {
	p := s.create(requirement.TipeBUP)
	ctx := context.Background()

	_, err := s.uc.Upload(ctx, s.operator, UploadInput{PengajuanID: p.ID, DocumentType: "SK CPNS", Filename: "sk.pdf", Content: strings.NewReader("bukan pdf")})
	var verr *ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal("Tipe file harus PDF, JPG, atau PNG", verr.Fields["2"])

	big := append(append([]byte{}, pdfBytes...), bytes.Repeat([]byte("0"), 400*1024)...)
	_, err = s.uc.Upload(ctx, s.operator, UploadInput{PengajuanID: p.ID, DocumentType: "SK CPNS", Filename: "sk.pdf", Content: bytes.NewReader(big)})
	s.Require().ErrorAs(err, &verr)
	s.Equal("Ukuran file maksimal 350 KB", verr.Fields["2"])

	// SKP boleh sampai 1.5 MB
	_, err = s.uc.Upload(ctx, s.operator, UploadInput{PengajuanID: p.ID, DocumentType: "skp 2 tahun terakhir", Filename: "skp.pdf", Content: bytes.NewReader(big)})
	s.Require().NoError(err)

	_, err = s.uc.Upload(ctx, s.operator, UploadInput{PengajuanID: p.ID, DocumentType: "Akta Kematian", Filename: "a.pdf", Content: bytes.NewReader(pdfBytes)})
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr.Fields, "document_type")

	s.Equal(2.0, testutil.ToFloat64(s.metrics.UploadRejected))
}

func (s *PengajuanSuite) TestReuploadReplacesFile() {
	p := s.create(requirement.TipeBUP)
	ctx := context.Background()

	first, err := s.uc.Upload(ctx, s.operator, UploadInput{PengajuanID: p.ID, DocumentType: "Pas Foto", Filename: "foto.png", Content: bytes.NewReader(pngBytes)})
	s.Require().NoError(err)
	s.Equal("image/png", first.MimeType)

	second, err := s.uc.Upload(ctx, s.operator, UploadInput{PengajuanID: p.ID, DocumentType: "Pas Foto", Filename: "foto2.png", Content: bytes.NewReader(pngBytes)})
	s.Require().NoError(err)

	s.Equal(1, s.files.Len())
	s.NotContains(s.files.Files, first.NamaFile)
	s.Contains(s.files.Files, second.NamaFile)

	full, err := s.uc.Get(s.operator, p.ID)
	s.Require().NoError(err)
	s.Len(full.Dokumen, 1)
}

func (s *PengajuanSuite) TestApproveRequiresAllCompliant() {
	p := s.submitted(requirement.TipeBUP)

	_, err := s.uc.Decide(context.Background(), s.reviewer, p.ID, compliance.DecisionAccept, "")
	s.ErrorIs(err, compliance.ErrNotAllCompliant, "belum diperiksa")

	s.markAll(p, true)
	_, err = s.uc.Decide(context.Background(), s.reviewer, p.ID, compliance.DecisionReject, "tidak lengkap")
	s.ErrorIs(err, compliance.ErrRejectAllCompliant)

	decided, err := s.uc.Decide(context.Background(), s.reviewer, p.ID, compliance.DecisionAccept, "")
	s.Require().NoError(err)
	s.Equal(model.StatusDiterima, decided.Status)
	s.Require().NotNil(decided.DiputuskanOleh)
	s.Equal(s.reviewer.ID, *decided.DiputuskanOleh)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.PengajuanDecisions.WithLabelValues("diterima")))

	s.Require().Len(s.notifier.sent, 1)
	s.Equal("ahmad@example.go.id", s.notifier.sent[0].To)

	_, err = s.uc.Decide(context.Background(), s.reviewer, p.ID, compliance.DecisionReject, "x")
	s.ErrorIs(err, ErrInvalidTransition)
}

// readHook menjalankan after setiap kali pengajuan dibaca, meniru request lain
// yang masuk di antara pembacaan dan keputusan.
type readHook struct {
	repository.PengajuanRepository
	after func()
}

func (r readHook) FindByID(id uint) (*model.PengajuanPensiun, error) {
	p, err := r.PengajuanRepository.FindByID(id)
	if r.after != nil {
		r.after()
	}
	return p, err
}

func (s *PengajuanSuite) TestDecideUsesFlagsAtCommitTime() {
	p := s.submitted(requirement.TipeBUP)
	s.markAll(p, true)
	full, err := s.uc.Get(s.reviewer, p.ID)
	s.Require().NoError(err)
	target := full.Dokumen[3].ID

	no := false
	var once sync.Once
	deps := s.uc.PengajuanDeps
	deps.Pengajuan = readHook{PengajuanRepository: s.store.Pengajuan(), after: func() {
		once.Do(func() {
			s.Require().NoError(s.store.Dokumen().SetKepatuhan(target, model.StatusDiajukan, &no))
		})
	}}
	uc := NewPengajuanUsecase(deps)

	_, err = uc.Decide(context.Background(), s.reviewer, p.ID, compliance.DecisionAccept, "")
	s.ErrorIs(err, compliance.ErrNotAllCompliant)

	after, err := s.uc.Get(s.reviewer, p.ID)
	s.Require().NoError(err)
	s.Equal(model.StatusDiajukan, after.Status)
	s.Empty(s.notifier.sent)
}

func (s *PengajuanSuite) TestKepatuhanFrozenAfterDecision() {
	p := s.submitted(requirement.TipeBUP)
	s.markAll(p, true)
	full, err := s.uc.Get(s.reviewer, p.ID)
	s.Require().NoError(err)

	_, err = s.uc.Decide(context.Background(), s.reviewer, p.ID, compliance.DecisionAccept, "")
	s.Require().NoError(err)

	no := false
	err = s.store.Dokumen().SetKepatuhan(full.Dokumen[0].ID, model.StatusDiajukan, &no)
	s.ErrorIs(err, repository.ErrStatusConflict)
	_, _, err = s.uc.SetKepatuhan(s.reviewer, full.Dokumen[0].ID, &no)
	s.ErrorIs(err, ErrInvalidTransition)
}

func (s *PengajuanSuite) TestRejectNeedsNotes() {
	p := s.submitted(requirement.TipeSakit)
	full, err := s.uc.Get(s.reviewer, p.ID)
	s.Require().NoError(err)

	no := false
	_, state, err := s.uc.SetKepatuhan(s.reviewer, full.Dokumen[0].ID, &no)
	s.Require().NoError(err)
	s.Equal(compliance.HasNoncompliant, state)

	_, err = s.uc.Decide(context.Background(), s.reviewer, p.ID, compliance.DecisionAccept, "")
	s.ErrorIs(err, compliance.ErrNotAllCompliant)
	_, err = s.uc.Decide(context.Background(), s.reviewer, p.ID, compliance.DecisionReject, "   ")
	s.ErrorIs(err, compliance.ErrNotesRequired)
	_, err = s.uc.Decide(context.Background(), s.reviewer, p.ID, "selesai", "ok")
	s.ErrorIs(err, compliance.ErrInvalidDecision)

	decided, err := s.uc.Decide(context.Background(), s.reviewer, p.ID, compliance.DecisionReject, " SK CPNS buram ")
	s.Require().NoError(err)
	s.Equal(model.StatusDitolak, decided.Status)
	s.Equal("SK CPNS buram", decided.Catatan)
}

func (s *PengajuanSuite) TestDraftOnlyOperations() {
	p := s.submitted(requirement.TipeBUP)

	_, err := s.uc.Submit(s.operator, p.ID)
	s.ErrorIs(err, ErrInvalidTransition)
	s.ErrorIs(s.uc.Delete(context.Background(), s.operator, p.ID), ErrInvalidTransition)

	full, err := s.uc.Get(s.operator, p.ID)
	s.Require().NoError(err)
	s.ErrorIs(s.uc.DeleteDokumen(context.Background(), s.operator, full.Dokumen[0].ID), ErrInvalidTransition)
}

func (s *PengajuanSuite) TestKepatuhanOnlyWhileDiajukan() {
	p := s.create(requirement.TipeBUP)
	doc, err := s.uc.Upload(context.Background(), s.operator, UploadInput{PengajuanID: p.ID, DocumentType: "KTP", Filename: "k.pdf", Content: bytes.NewReader(pdfBytes)})
	s.Require().Error(err, "KTP bukan dokumen bup")
	s.Nil(doc)

	doc, err = s.uc.Upload(context.Background(), s.operator, UploadInput{PengajuanID: p.ID, DocumentType: "Kartu Keluarga", Filename: "k.pdf", Content: bytes.NewReader(pdfBytes)})
	s.Require().NoError(err)
	yes := true
	_, _, err = s.uc.SetKepatuhan(s.reviewer, doc.ID, &yes)
	s.ErrorIs(err, ErrInvalidTransition)
}

func (s *PengajuanSuite) TestOperatorSeesOwnOnly() {
	p := s.create(requirement.TipeBUP)
	other := Actor{ID: 999, Role: model.RoleOperator}

	_, err := s.uc.Get(other, p.ID)
	s.ErrorIs(err, ErrForbidden)

	list, err := s.uc.List(other, repositoryFilter())
	s.Require().NoError(err)
	s.Empty(list)

	list, err = s.uc.List(s.reviewer, repositoryFilter())
	s.Require().NoError(err)
	s.Len(list, 1)

	_, err = s.uc.Get(s.reviewer, 12345)
	s.ErrorIs(err, ErrNotFound)
}

func (s *PengajuanSuite) TestDeleteDraftRemovesFiles() {
	p := s.create(requirement.TipeBUP)
	s.uploadAll(p)
	s.Equal(10, s.files.Len())

	s.Require().NoError(s.uc.Delete(context.Background(), s.operator, p.ID))
	s.Equal(0, s.files.Len())
	_, err := s.uc.Get(s.operator, p.ID)
	s.ErrorIs(err, ErrNotFound)
}

func TestValidationErrorMessage(t *testing.T) {
	err := invalid(map[string]string{"b": "dua", "a": "satu"})
	assert.EqualError(t, err, "validasi gagal: a: satu; b: dua")
	assert.NoError(t, invalid(nil))
	assert.False(t, errors.Is(err, ErrNotFound))
	require.True(t, Actor{Role: model.RoleAdmin}.SeesAll())
	require.False(t, Actor{Role: model.RoleOperator}.SeesAll())
}

func repositoryFilter() repository.PengajuanFilter {
	return repository.PengajuanFilter{}
}
