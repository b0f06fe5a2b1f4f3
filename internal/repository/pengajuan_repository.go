package repository

import (
	"errors"

	"sipensiun/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrStatusConflict: status pengajuan sudah berubah sebelum update dijalankan.
var ErrStatusConflict = errors.New("status pengajuan sudah berubah")

type PengajuanFilter struct {
	Status     string
	PegawaiID  uint
	DibuatOleh uint
	Search     string
}

type PengajuanRepository interface {
	Create(p *model.PengajuanPensiun) error
	Update(p *model.PengajuanPensiun) error
	Delete(id uint) error
	FindByID(id uint) (*model.PengajuanPensiun, error)
	GetAll(filter PengajuanFilter) ([]model.PengajuanPensiun, error)
	// UpdateStatus hanya berhasil bila status saat ini masih from.
	UpdateStatus(id uint, from string, fields map[string]interface{}) error
	// DecideStatus mengunci pengajuan dan dokumennya, menjalankan check atas
	// data terkunci, lalu mengubah status dalam satu transaksi.
	DecideStatus(id uint, from string, check func(p *model.PengajuanPensiun) error, fields map[string]interface{}) (*model.PengajuanPensiun, error)
}

type pengajuanRepository struct {
	db *gorm.DB
}

func NewPengajuanRepository(db *gorm.DB) PengajuanRepository {
	return &pengajuanRepository{db}
}

func (r *pengajuanRepository) Create(p *model.PengajuanPensiun) error {
	return r.db.Omit("Dokumen").Create(p).Error
}

func (r *pengajuanRepository) Update(p *model.PengajuanPensiun) error {
	return r.db.Omit("Dokumen").Save(p).Error
}

func (r *pengajuanRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("pengajuan_id = ?", id).Delete(&model.DokumenPengajuan{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PengajuanPensiun{}, id).Error
	})
}

func (r *pengajuanRepository) FindByID(id uint) (*model.PengajuanPensiun, error) {
	var p model.PengajuanPensiun
	err := r.db.Preload("Dokumen", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).First(&p, id).Error
	return &p, err
}

func (r *pengajuanRepository) GetAll(filter PengajuanFilter) ([]model.PengajuanPensiun, error) {
	var list []model.PengajuanPensiun
	query := r.db.Model(&model.PengajuanPensiun{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PegawaiID != 0 {
		query = query.Where("pegawai_id = ?", filter.PegawaiID)
	}
	if filter.DibuatOleh != 0 {
		query = query.Where("dibuat_oleh = ?", filter.DibuatOleh)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("nama LIKE ? OR nip LIKE ?", pattern, pattern)
	}

	err := query.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *pengajuanRepository) UpdateStatus(id uint, from string, fields map[string]interface{}) error {
	res := r.db.Model(&model.PengajuanPensiun{}).
		Where("id = ? AND status = ?", id, from).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (r *pengajuanRepository) DecideStatus(id uint, from string, check func(p *model.PengajuanPensiun) error, fields map[string]interface{}) (*model.PengajuanPensiun, error) {
	var p model.PengajuanPensiun
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error; err != nil {
			return err
		}
		if p.Status != from {
			return ErrStatusConflict
		}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("pengajuan_id = ?", id).Order("id").Find(&p.Dokumen).Error; err != nil {
			return err
		}
		if err := check(&p); err != nil {
			return err
		}
		return tx.Model(&model.PengajuanPensiun{}).Where("id = ?", id).Updates(fields).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}
