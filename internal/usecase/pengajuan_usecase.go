package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"sipensiun/internal/compliance"
	"sipensiun/internal/format"
	"sipensiun/internal/metrics"
	"sipensiun/internal/model"
	"sipensiun/internal/notify"
	"sipensiun/internal/repository"
	"sipensiun/internal/requirement"
	"sipensiun/internal/storage"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Actor adalah pengguna yang sedang login (dari Locals).
type Actor struct {
	ID   uint
	Role string
}

// SeesAll: selain Operator, semua role melihat seluruh pengajuan.
func (a Actor) SeesAll() bool {
	return a.Role == model.RoleSuperadmin || a.Role == model.RoleAdmin || a.Role == model.RoleVerifikator
}

type PengajuanInput struct {
	PegawaiID    uint   `json:"pegawai_id"`
	Nama         string `json:"nama"`
	NIP          string `json:"nip"`
	Jabatan      string `json:"jabatan"`
	UnitKerja    string `json:"unit_kerja"`
	Pangkat      string `json:"pangkat"`
	JenisPensiun string `json:"jenis_pensiun"`
	TipePensiun  string `json:"tipe_pensiun"`
	TMTPensiun   string `json:"tmt_pensiun"`
}

type UploadInput struct {
	PengajuanID  uint
	DocumentType string
	Note         string
	Filename     string
	Content      io.Reader
}

type PengajuanDeps struct {
	Pengajuan repository.PengajuanRepository
	Dokumen   repository.DokumenRepository
	ASN       repository.ASNRepository
	Storage   storage.FileStorage
	Notifier  notify.Notifier
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
	Now       func() time.Time
}

type PengajuanUsecase struct {
	PengajuanDeps
}

func NewPengajuanUsecase(deps PengajuanDeps) *PengajuanUsecase {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Notifier == nil {
		deps.Notifier = notify.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &PengajuanUsecase{deps}
}

var jenisValid = map[string]bool{
	model.JenisNormal:     true,
	model.JenisDipercepat: true,
	model.JenisKhusus:     true,
}

func (u *PengajuanUsecase) List(actor Actor, filter repository.PengajuanFilter) ([]model.PengajuanPensiun, error) {
	if !actor.SeesAll() {
		filter.DibuatOleh = actor.ID
	}
	return u.Pengajuan.GetAll(filter)
}

func (u *PengajuanUsecase) Get(actor Actor, id uint) (*model.PengajuanPensiun, error) {
	p, err := u.Pengajuan.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !actor.SeesAll() && p.DibuatOleh != actor.ID {
		return nil, ErrForbidden
	}
	return p, nil
}

func (u *PengajuanUsecase) fill(in *PengajuanInput) error {
	if in.PegawaiID == 0 {
		return nil
	}
	asn, err := u.ASN.FindByID(in.PegawaiID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invalid(map[string]string{"pegawai_id": "Pegawai tidak ditemukan"})
	}
	if err != nil {
		return err
	}
	if in.Nama == "" {
		in.Nama = asn.Nama
	}
	if in.NIP == "" {
		in.NIP = asn.NIP
	}
	if in.Jabatan == "" {
		in.Jabatan = asn.Jabatan
	}
	if in.UnitKerja == "" {
		in.UnitKerja = asn.UnitKerja.NamaUnit
	}
	if in.Pangkat == "" {
		in.Pangkat = asn.PangkatGolongan()
	}
	return nil
}

func validateInput(in PengajuanInput) error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Nama) == "" {
		fields["nama"] = "Nama wajib diisi"
	}
	if nip := format.StripNonDigits(in.NIP); len(nip) != 18 {
		fields["nip"] = "NIP harus 18 digit"
	}
	if !jenisValid[in.JenisPensiun] {
		fields["jenis_pensiun"] = "Jenis pensiun harus normal, dipercepat, atau khusus"
	}
	if !requirement.IsKnownType(in.TipePensiun) {
		fields["tipe_pensiun"] = "Tipe pensiun harus " + strings.Join(requirement.KnownTypes, ", ")
	}
	if in.TMTPensiun == "" {
		fields["tmt_pensiun"] = "TMT pensiun wajib diisi"
	} else if _, err := time.Parse("2006-01-02", in.TMTPensiun); err != nil {
		fields["tmt_pensiun"] = "Tanggal tidak valid"
	}
	return invalid(fields)
}

func apply(p *model.PengajuanPensiun, in PengajuanInput) {
	p.PegawaiID = in.PegawaiID
	p.Nama = strings.TrimSpace(in.Nama)
	p.NIP = format.StripNonDigits(in.NIP)
	p.Jabatan = in.Jabatan
	p.UnitKerja = in.UnitKerja
	p.Pangkat = in.Pangkat
	p.JenisPensiun = in.JenisPensiun
	p.TipePensiun = in.TipePensiun
	p.TMTPensiun = in.TMTPensiun
}

func (u *PengajuanUsecase) Create(actor Actor, in PengajuanInput) (*model.PengajuanPensiun, error) {
	if err := u.fill(&in); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	p := &model.PengajuanPensiun{DibuatOleh: actor.ID, Status: model.StatusDraft}
	apply(p, in)
	if err := u.Pengajuan.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *PengajuanUsecase) draft(actor Actor, id uint) (*model.PengajuanPensiun, error) {
	p, err := u.Get(actor, id)
	if err != nil {
		return nil, err
	}
	if p.Status != model.StatusDraft {
		return nil, fmt.Errorf("%w: pengajuan berstatus %s", ErrInvalidTransition, p.Status)
	}
	return p, nil
}

func (u *PengajuanUsecase) Update(actor Actor, id uint, in PengajuanInput) (*model.PengajuanPensiun, error) {
	p, err := u.draft(actor, id)
	if err != nil {
		return nil, err
	}
	if err := u.fill(&in); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	// Tipe berubah = daftar dokumen berubah; dokumen yang tidak ada di daftar baru dibuang.
	if in.TipePensiun != p.TipePensiun {
		for _, d := range p.Dokumen {
			if requirement.IndexOf(in.TipePensiun, d.JenisDokumen) < 0 {
				if err := u.removeDokumen(context.Background(), d); err != nil {
					return nil, err
				}
			}
		}
	}
	apply(p, in)
	if err := u.Pengajuan.Update(p); err != nil {
		return nil, err
	}
	return u.Pengajuan.FindByID(id)
}

func (u *PengajuanUsecase) Delete(ctx context.Context, actor Actor, id uint) error {
	p, err := u.draft(actor, id)
	if err != nil {
		return err
	}
	if err := u.Pengajuan.Delete(id); err != nil {
		return err
	}
	for _, d := range p.Dokumen {
		if err := u.Storage.Delete(ctx, d.NamaFile); err != nil {
			u.Logger.Warn("gagal hapus berkas", zap.String("file", d.NamaFile), zap.Error(err))
		}
	}
	return nil
}

// Submit: draft -> diajukan. Semua slot dokumen wajib harus sudah terunggah.
func (u *PengajuanUsecase) Submit(actor Actor, id uint) (*model.PengajuanPensiun, error) {
	p, err := u.draft(actor, id)
	if err != nil {
		return nil, err
	}

	uploaded := map[string]bool{}
	for _, d := range p.Dokumen {
		uploaded[strings.ToLower(d.JenisDokumen)] = true
	}
	missing := map[string]string{}
	for _, slot := range requirement.Slots(p.TipePensiun) {
		if slot.Required && !uploaded[strings.ToLower(slot.Label)] {
			missing[strconv.Itoa(slot.Index)] = slot.Label + " belum diunggah"
		}
	}
	if err := invalid(missing); err != nil {
		return nil, err
	}

	now := u.Now()
	err = u.Pengajuan.UpdateStatus(id, model.StatusDraft, map[string]interface{}{
		"status":      model.StatusDiajukan,
		"diajukan_at": now,
		"catatan":     "",
	})
	if errors.Is(err, repository.ErrStatusConflict) {
		return nil, ErrInvalidTransition
	}
	if err != nil {
		return nil, err
	}
	p.Status = model.StatusDiajukan
	p.DiajukanAt = &now
	p.Catatan = ""
	return p, nil
}

// Decide menjalankan gerbang kepatuhan di server sebelum status diubah.
func (u *PengajuanUsecase) Decide(ctx context.Context, reviewer Actor, id uint, decision, notes string) (*model.PengajuanPensiun, error) {
	p, err := u.Get(reviewer, id)
	if err != nil {
		return nil, err
	}
	if p.Status != model.StatusDiajukan {
		return nil, fmt.Errorf("%w: pengajuan berstatus %s", ErrInvalidTransition, p.Status)
	}

	now := u.Now()
	notes = strings.TrimSpace(notes)
	// Flag kepatuhan dibaca ulang di dalam transaksi yang sama dengan update status.
	p, err = u.Pengajuan.DecideStatus(id, model.StatusDiajukan, func(cur *model.PengajuanPensiun) error {
		return compliance.Decide(decision, cur.KepatuhanDokumen(), notes)
	}, map[string]interface{}{
		"status":          decision,
		"catatan":         notes,
		"diputuskan_at":   now,
		"diputuskan_oleh": reviewer.ID,
	})
	if errors.Is(err, repository.ErrStatusConflict) {
		return nil, ErrInvalidTransition
	}
	if err != nil {
		return nil, err
	}

	p.Status = decision
	p.Catatan = notes
	p.DiputuskanAt = &now
	p.DiputuskanOleh = &reviewer.ID
	u.Metrics.PengajuanDecisions.WithLabelValues(decision).Inc()
	u.Logger.Info("keputusan pengajuan",
		zap.Uint("pengajuan_id", id),
		zap.String("status", decision),
		zap.Uint("reviewer_id", reviewer.ID),
	)

	u.notifyDecision(ctx, p)
	return p, nil
}

func (u *PengajuanUsecase) notifyDecision(ctx context.Context, p *model.PengajuanPensiun) {
	if p.PegawaiID == 0 {
		return
	}
	asn, err := u.ASN.FindByID(p.PegawaiID)
	if err != nil {
		u.Logger.Warn("pegawai untuk notifikasi tidak ditemukan", zap.Uint("pegawai_id", p.PegawaiID), zap.Error(err))
		return
	}
	err = u.Notifier.NotifyDecision(ctx, notify.Decision{
		To:          asn.Email,
		Nama:        p.Nama,
		NIP:         p.NIP,
		PengajuanID: p.ID,
		Status:      p.Status,
		Catatan:     p.Catatan,
	})
	if err != nil {
		u.Logger.Warn("notifikasi keputusan gagal", zap.Uint("pengajuan_id", p.ID), zap.Error(err))
	}
}

// Upload memvalidasi berkas (isi di-sniff, bukan header klien), menyimpannya,
// lalu mengganti dokumen lama dengan jenis yang sama.
func (u *PengajuanUsecase) Upload(ctx context.Context, actor Actor, in UploadInput) (*model.DokumenPengajuan, error) {
	p, err := u.draft(actor, in.PengajuanID)
	if err != nil {
		return nil, err
	}

	index := requirement.IndexOf(p.TipePensiun, in.DocumentType)
	if index < 0 {
		return nil, invalid(map[string]string{"document_type": "Jenis dokumen tidak dikenal untuk tipe " + p.TipePensiun})
	}
	label := requirement.RequiredDocumentLabels(p.TipePensiun)[index]

	data, err := io.ReadAll(io.LimitReader(in.Content, requirement.MaxSKPBytes+1))
	if err != nil {
		return nil, fmt.Errorf("baca berkas: %w", err)
	}
	mime := mimetype.Detect(data).String()
	if fe := requirement.ValidateUpload(index, label, in.Filename, mime, int64(len(data))); fe != nil {
		u.Metrics.UploadRejected.Inc()
		return nil, invalid(map[string]string{strconv.Itoa(index): fe.Message})
	}

	name := storage.ObjectName(p.ID, in.Filename, u.Now())
	if err := u.Storage.Save(ctx, name, bytes.NewReader(data), int64(len(data)), mime); err != nil {
		return nil, err
	}

	doc := &model.DokumenPengajuan{
		PengajuanID:  p.ID,
		NamaAsli:     in.Filename,
		NamaFile:     name,
		MimeType:     mime,
		Ukuran:       int64(len(data)),
		JenisDokumen: label,
		Wajib:        true,
		Keterangan:   strings.TrimSpace(in.Note),
	}
	old, err := u.Dokumen.Replace(doc)
	if err != nil {
		_ = u.Storage.Delete(ctx, name)
		return nil, err
	}
	if old != nil {
		if err := u.Storage.Delete(ctx, old.NamaFile); err != nil {
			u.Logger.Warn("gagal hapus berkas lama", zap.String("file", old.NamaFile), zap.Error(err))
		}
	}

	u.Metrics.DocumentsUploaded.WithLabelValues(p.TipePensiun).Inc()
	return doc, nil
}

func (u *PengajuanUsecase) dokumenOf(actor Actor, id uint) (*model.DokumenPengajuan, *model.PengajuanPensiun, error) {
	d, err := u.Dokumen.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	p, err := u.Get(actor, d.PengajuanID)
	if err != nil {
		return nil, nil, err
	}
	return d, p, nil
}

func (u *PengajuanUsecase) DeleteDokumen(ctx context.Context, actor Actor, id uint) error {
	d, p, err := u.dokumenOf(actor, id)
	if err != nil {
		return err
	}
	if p.Status != model.StatusDraft {
		return fmt.Errorf("%w: dokumen hanya bisa dihapus saat draft", ErrInvalidTransition)
	}
	return u.removeDokumen(ctx, *d)
}

func (u *PengajuanUsecase) removeDokumen(ctx context.Context, d model.DokumenPengajuan) error {
	if err := u.Dokumen.Delete(d.ID); err != nil {
		return err
	}
	if err := u.Storage.Delete(ctx, d.NamaFile); err != nil {
		u.Logger.Warn("gagal hapus berkas", zap.String("file", d.NamaFile), zap.Error(err))
	}
	return nil
}

// SetKepatuhan menandai satu dokumen memenuhi syarat atau tidak (nil = reset).
func (u *PengajuanUsecase) SetKepatuhan(reviewer Actor, id uint, memenuhi *bool) (*model.DokumenPengajuan, compliance.State, error) {
	d, p, err := u.dokumenOf(reviewer, id)
	if err != nil {
		return nil, "", err
	}
	if p.Status != model.StatusDiajukan {
		return nil, "", fmt.Errorf("%w: kepatuhan hanya bisa diperiksa saat diajukan", ErrInvalidTransition)
	}
	err = u.Dokumen.SetKepatuhan(id, model.StatusDiajukan, memenuhi)
	if errors.Is(err, repository.ErrStatusConflict) {
		return nil, "", fmt.Errorf("%w: kepatuhan hanya bisa diperiksa saat diajukan", ErrInvalidTransition)
	}
	if err != nil {
		return nil, "", err
	}
	d.MemenuhiSyarat = memenuhi

	for i := range p.Dokumen {
		if p.Dokumen[i].ID == id {
			p.Dokumen[i].MemenuhiSyarat = memenuhi
		}
	}
	return d, compliance.Evaluate(p.KepatuhanDokumen()), nil
}
