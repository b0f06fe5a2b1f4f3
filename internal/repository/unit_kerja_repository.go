package repository

import (
	"sipensiun/internal/model"

	"gorm.io/gorm"
)

type UnitKerjaRepository interface {
	GetAll() ([]model.UnitKerja, error)
	GetByID(id uint) (*model.UnitKerja, error)
	Create(unit *model.UnitKerja) error
	Update(unit *model.UnitKerja) error
	Delete(id uint) error
}

type unitKerjaRepository struct {
	db *gorm.DB
}

func NewUnitKerjaRepository(db *gorm.DB) UnitKerjaRepository {
	return &unitKerjaRepository{db}
}

func (r *unitKerjaRepository) GetAll() ([]model.UnitKerja, error) {
	var units []model.UnitKerja
	err := r.db.Order("nama_unit").Find(&units).Error
	return units, err
}

func (r *unitKerjaRepository) GetByID(id uint) (*model.UnitKerja, error) {
	var unit model.UnitKerja
	err := r.db.First(&unit, id).Error
	return &unit, err
}

func (r *unitKerjaRepository) Create(unit *model.UnitKerja) error {
	return r.db.Create(unit).Error
}

func (r *unitKerjaRepository) Update(unit *model.UnitKerja) error {
	return r.db.Save(unit).Error
}

func (r *unitKerjaRepository) Delete(id uint) error {
	return r.db.Delete(&model.UnitKerja{}, id).Error
}
