// Package repotest menyediakan repository in-memory untuk test usecase dan handler.
package repotest

import (
	"sort"
	"strings"
	"sync"
	"time"

	"sipensiun/internal/model"
	"sipensiun/internal/repository"

	"gorm.io/gorm"
)

type Store struct {
	mu        sync.Mutex
	nextID    uint
	pengajuan map[uint]model.PengajuanPensiun
	dokumen   map[uint]model.DokumenPengajuan
	asn       map[uint]model.ASN
	roles     map[uint]model.Role
	surat     map[uint]model.Surat
	units     map[uint]model.UnitKerja
}

func New() *Store {
	return &Store{
		pengajuan: map[uint]model.PengajuanPensiun{},
		dokumen:   map[uint]model.DokumenPengajuan{},
		asn:       map[uint]model.ASN{},
		roles:     map[uint]model.Role{},
		surat:     map[uint]model.Surat{},
		units:     map[uint]model.UnitKerja{},
	}
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

func stamp(m *gorm.Model, id uint) {
	now := time.Now()
	if m.ID == 0 {
		m.ID = id
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

// AddRole dan AddASN dipakai test untuk menyiapkan data awal.
func (s *Store) AddRole(name string, perms ...string) model.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := model.Role{NamaRole: name}
	stamp(&r.Model, s.id())
	for _, p := range perms {
		perm := model.Permission{NamaPermission: p}
		stamp(&perm.Model, s.id())
		r.Permissions = append(r.Permissions, perm)
	}
	s.roles[r.ID] = r
	return r
}

func (s *Store) AddASN(a model.ASN) model.ASN {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&a.Model, s.id())
	s.asn[a.ID] = a
	return a
}

// --- Pengajuan ---

type pengajuanRepo struct{ s *Store }

func (s *Store) Pengajuan() repository.PengajuanRepository { return pengajuanRepo{s} }

func (r pengajuanRepo) Create(p *model.PengajuanPensiun) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&p.Model, r.s.id())
	if p.Status == "" {
		p.Status = model.StatusDraft
	}
	cp := *p
	cp.Dokumen = nil
	r.s.pengajuan[p.ID] = cp
	return nil
}

func (r pengajuanRepo) Update(p *model.PengajuanPensiun) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.pengajuan[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stamp(&p.Model, 0)
	cp := *p
	cp.Dokumen = nil
	r.s.pengajuan[p.ID] = cp
	return nil
}

func (r pengajuanRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for did, d := range r.s.dokumen {
		if d.PengajuanID == id {
			delete(r.s.dokumen, did)
		}
	}
	delete(r.s.pengajuan, id)
	return nil
}

func (r pengajuanRepo) FindByID(id uint) (*model.PengajuanPensiun, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pengajuan[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	p.Dokumen = r.s.dokumenOf(id)
	return &p, nil
}

func (s *Store) dokumenOf(pengajuanID uint) []model.DokumenPengajuan {
	var docs []model.DokumenPengajuan
	for _, d := range s.dokumen {
		if d.PengajuanID == pengajuanID {
			docs = append(docs, d)
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs
}

func (r pengajuanRepo) GetAll(f repository.PengajuanFilter) ([]model.PengajuanPensiun, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.PengajuanPensiun
	for _, p := range r.s.pengajuan {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.PegawaiID != 0 && p.PegawaiID != f.PegawaiID {
			continue
		}
		if f.DibuatOleh != 0 && p.DibuatOleh != f.DibuatOleh {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Nama), strings.ToLower(f.Search)) && !strings.Contains(p.NIP, f.Search) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r pengajuanRepo) UpdateStatus(id uint, from string, fields map[string]interface{}) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pengajuan[id]
	if !ok || p.Status != from {
		return repository.ErrStatusConflict
	}
	applyStatus(&p, fields)
	r.s.pengajuan[id] = p
	return nil
}

// DecideStatus menjalankan check dan update di bawah satu lock store.
func (r pengajuanRepo) DecideStatus(id uint, from string, check func(p *model.PengajuanPensiun) error, fields map[string]interface{}) (*model.PengajuanPensiun, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pengajuan[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if p.Status != from {
		return nil, repository.ErrStatusConflict
	}
	locked := p
	locked.Dokumen = r.s.dokumenOf(id)
	if err := check(&locked); err != nil {
		return nil, err
	}
	applyStatus(&p, fields)
	r.s.pengajuan[id] = p
	return &locked, nil
}

func applyStatus(p *model.PengajuanPensiun, fields map[string]interface{}) {
	for k, v := range fields {
		switch k {
		case "status":
			p.Status = v.(string)
		case "catatan":
			p.Catatan = v.(string)
		case "diajukan_at":
			t := v.(time.Time)
			p.DiajukanAt = &t
		case "diputuskan_at":
			t := v.(time.Time)
			p.DiputuskanAt = &t
		case "diputuskan_oleh":
			id := v.(uint)
			p.DiputuskanOleh = &id
		}
	}
}

// --- Dokumen ---

type dokumenRepo struct{ s *Store }

func (s *Store) Dokumen() repository.DokumenRepository { return dokumenRepo{s} }

func (r dokumenRepo) FindByID(id uint) (*model.DokumenPengajuan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.dokumen[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (r dokumenRepo) ListByPengajuan(pengajuanID uint) ([]model.DokumenPengajuan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.dokumenOf(pengajuanID), nil
}

func (r dokumenRepo) Replace(d *model.DokumenPengajuan) (*model.DokumenPengajuan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var old *model.DokumenPengajuan
	for id, existing := range r.s.dokumen {
		if existing.PengajuanID == d.PengajuanID && existing.JenisDokumen == d.JenisDokumen {
			e := existing
			old = &e
			delete(r.s.dokumen, id)
		}
	}
	stamp(&d.Model, r.s.id())
	r.s.dokumen[d.ID] = *d
	return old, nil
}

func (r dokumenRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.dokumen, id)
	return nil
}

func (r dokumenRepo) SetKepatuhan(id uint, status string, memenuhi *bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.dokumen[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if r.s.pengajuan[d.PengajuanID].Status != status {
		return repository.ErrStatusConflict
	}
	d.MemenuhiSyarat = memenuhi
	r.s.dokumen[id] = d
	return nil
}

// --- ASN ---

type asnRepo struct{ s *Store }

func (s *Store) ASN() repository.ASNRepository { return asnRepo{s} }

func (r asnRepo) withRole(a model.ASN) model.ASN {
	if role, ok := r.s.roles[a.RoleID]; ok {
		a.Role = role
	}
	if unit, ok := r.s.units[a.UnitKerjaID]; ok {
		a.UnitKerja = unit
	}
	return a
}

func (r asnRepo) FindByNIP(nip string) (*model.ASN, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.asn {
		if a.NIP == nip {
			a = r.withRole(a)
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r asnRepo) FindByID(id uint) (*model.ASN, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.asn[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	a = r.withRole(a)
	return &a, nil
}

func (r asnRepo) Create(a *model.ASN) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&a.Model, r.s.id())
	r.s.asn[a.ID] = *a
	return nil
}

func (r asnRepo) Update(a *model.ASN) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.asn[a.ID] = *a
	return nil
}

func (r asnRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.asn, id)
	return nil
}

func (r asnRepo) sorted(keep func(model.ASN) bool) []model.ASN {
	var out []model.ASN
	for _, a := range r.s.asn {
		a = r.withRole(a)
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nama < out[j].Nama })
	return out
}

func matches(a model.ASN, q string) bool {
	return strings.Contains(strings.ToLower(a.Nama), strings.ToLower(q)) || strings.Contains(a.NIP, q)
}

func (r asnRepo) GetAll(f repository.ASNFilter) ([]model.ASN, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(a model.ASN) bool {
		return (f.Search == "" || matches(a, f.Search)) && (f.Role == "" || a.Role.NamaRole == f.Role)
	}), nil
}

func (r asnRepo) Search(q string, limit int) ([]model.ASN, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.sorted(func(a model.ASN) bool { return a.IsActive && matches(a, q) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r asnRepo) Count() (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.asn)), nil
}

// --- Role ---

type roleRepo struct{ s *Store }

func (s *Store) Role() repository.RoleRepository { return roleRepo{s} }

func (r roleRepo) GetAll() ([]model.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Role
	for _, role := range r.s.roles {
		out = append(out, role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r roleRepo) GetByID(id uint) (*model.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	role, ok := r.s.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &role, nil
}

func (r roleRepo) GetByName(name string) (*model.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, role := range r.s.roles {
		if role.NamaRole == name {
			return &role, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r roleRepo) Create(role *model.Role, permissionIDs []uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&role.Model, r.s.id())
	r.s.roles[role.ID] = *role
	return nil
}

func (r roleRepo) Update(role *model.Role, permissionIDs []uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.roles[role.ID] = *role
	return nil
}

func (r roleRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.roles, id)
	return nil
}

func (r roleRepo) GetAllPermissions() ([]model.Permission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Permission
	for _, role := range r.s.roles {
		out = append(out, role.Permissions...)
	}
	return out, nil
}

// --- Surat ---

type suratRepo struct{ s *Store }

func (s *Store) Surat() repository.SuratRepository { return suratRepo{s} }

func (r suratRepo) GetAll(page, limit int) ([]model.Surat, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Surat
	for _, row := range r.s.surat {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	total := int64(len(out))
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		start := (page - 1) * limit
		if start > len(out) {
			start = len(out)
		}
		end := start + limit
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, total, nil
}

func (r suratRepo) FindByPublicID(id string) (*model.Surat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, row := range r.s.surat {
		if row.PublicID == id {
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r suratRepo) Create(row *model.Surat) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&row.Model, r.s.id())
	r.s.surat[row.ID] = *row
	return nil
}

func (r suratRepo) Update(row *model.Surat) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&row.Model, 0)
	r.s.surat[row.ID] = *row
	return nil
}

func (r suratRepo) Delete(publicID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, row := range r.s.surat {
		if row.PublicID == publicID {
			delete(r.s.surat, id)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// --- Unit kerja ---

type unitRepo struct{ s *Store }

func (s *Store) UnitKerja() repository.UnitKerjaRepository { return unitRepo{s} }

func (r unitRepo) GetAll() ([]model.UnitKerja, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.UnitKerja
	for _, u := range r.s.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NamaUnit < out[j].NamaUnit })
	return out, nil
}

func (r unitRepo) GetByID(id uint) (*model.UnitKerja, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.units[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r unitRepo) Create(u *model.UnitKerja) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&u.Model, r.s.id())
	r.s.units[u.ID] = *u
	return nil
}

func (r unitRepo) Update(u *model.UnitKerja) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.units[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.units[u.ID] = *u
	return nil
}

func (r unitRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.units, id)
	return nil
}
