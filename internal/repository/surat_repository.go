package repository

import (
	"sipensiun/internal/model"

	"gorm.io/gorm"
)

type SuratRepository interface {
	// GetAll: limit <= 0 berarti tanpa paginasi.
	GetAll(page, limit int) ([]model.Surat, int64, error)
	FindByPublicID(id string) (*model.Surat, error)
	Create(s *model.Surat) error
	Update(s *model.Surat) error
	Delete(publicID string) error
}

type suratRepository struct {
	db *gorm.DB
}

func NewSuratRepository(db *gorm.DB) SuratRepository {
	return &suratRepository{db}
}

func (r *suratRepository) GetAll(page, limit int) ([]model.Surat, int64, error) {
	var list []model.Surat
	var total int64

	if err := r.db.Model(&model.Surat{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.Order("created_at DESC")
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	err := query.Find(&list).Error
	return list, total, err
}

func (r *suratRepository) FindByPublicID(id string) (*model.Surat, error) {
	var s model.Surat
	err := r.db.Where("public_id = ?", id).First(&s).Error
	return &s, err
}

func (r *suratRepository) Create(s *model.Surat) error {
	return r.db.Create(s).Error
}

func (r *suratRepository) Update(s *model.Surat) error {
	return r.db.Save(s).Error
}

func (r *suratRepository) Delete(publicID string) error {
	res := r.db.Where("public_id = ?", publicID).Delete(&model.Surat{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
