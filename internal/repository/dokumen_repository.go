package repository

import (
	"errors"

	"sipensiun/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DokumenRepository interface {
	FindByID(id uint) (*model.DokumenPengajuan, error)
	ListByPengajuan(pengajuanID uint) ([]model.DokumenPengajuan, error)
	// Replace menyimpan dokumen baru dan mengembalikan dokumen lama dengan
	// jenis yang sama (nil bila belum ada) agar berkasnya bisa dihapus.
	Replace(d *model.DokumenPengajuan) (*model.DokumenPengajuan, error)
	Delete(id uint) error
	// SetKepatuhan hanya berhasil bila pengajuan induk masih berstatus status.
	SetKepatuhan(id uint, status string, memenuhi *bool) error
}

type dokumenRepository struct {
	db *gorm.DB
}

func NewDokumenRepository(db *gorm.DB) DokumenRepository {
	return &dokumenRepository{db}
}

func (r *dokumenRepository) FindByID(id uint) (*model.DokumenPengajuan, error) {
	var d model.DokumenPengajuan
	err := r.db.First(&d, id).Error
	return &d, err
}

func (r *dokumenRepository) ListByPengajuan(pengajuanID uint) ([]model.DokumenPengajuan, error) {
	var docs []model.DokumenPengajuan
	err := r.db.Where("pengajuan_id = ?", pengajuanID).Order("id").Find(&docs).Error
	return docs, err
}

func (r *dokumenRepository) Replace(d *model.DokumenPengajuan) (*model.DokumenPengajuan, error) {
	var old *model.DokumenPengajuan
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.DokumenPengajuan
		err := tx.Where("pengajuan_id = ? AND jenis_dokumen = ?", d.PengajuanID, d.JenisDokumen).First(&existing).Error
		switch {
		case err == nil:
			old = &existing
			// Hard delete agar unique index (pengajuan_id, jenis_dokumen) bebas
			if err := tx.Unscoped().Delete(&existing).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Create(d).Error
	})
	return old, err
}

func (r *dokumenRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&model.DokumenPengajuan{}, id).Error
}

// Baris pengajuan induk dikunci lebih dulu, urutan yang sama dengan DecideStatus.
func (r *dokumenRepository) SetKepatuhan(id uint, status string, memenuhi *bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var d model.DokumenPengajuan
		if err := tx.First(&d, id).Error; err != nil {
			return err
		}
		var p model.PengajuanPensiun
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, d.PengajuanID).Error; err != nil {
			return err
		}
		if p.Status != status {
			return ErrStatusConflict
		}
		return tx.Model(&model.DokumenPengajuan{}).Where("id = ?", id).Update("memenuhi_syarat", memenuhi).Error
	})
}
