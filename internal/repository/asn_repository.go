package repository

import (
	"sipensiun/internal/model"

	"gorm.io/gorm"
)

type ASNFilter struct {
	Search string
	Role   string
}

type ASNRepository interface {
	FindByNIP(nip string) (*model.ASN, error)
	FindByID(id uint) (*model.ASN, error)
	Create(asn *model.ASN) error
	Update(asn *model.ASN) error
	Delete(id uint) error
	GetAll(filter ASNFilter) ([]model.ASN, error)
	Search(query string, limit int) ([]model.ASN, error)
	Count() (int64, error)
}

type asnRepository struct {
	db *gorm.DB
}

func NewASNRepository(db *gorm.DB) ASNRepository {
	return &asnRepository{db}
}

func (r *asnRepository) FindByNIP(nip string) (*model.ASN, error) {
	var asn model.ASN
	// Preload Role dan Unit Kerja agar datanya lengkap saat login
	err := r.db.Preload("Role.Permissions").Preload("UnitKerja").Where("nip = ?", nip).First(&asn).Error
	return &asn, err
}

func (r *asnRepository) FindByID(id uint) (*model.ASN, error) {
	var asn model.ASN
	err := r.db.Preload("Role.Permissions").Preload("UnitKerja").First(&asn, id).Error
	return &asn, err
}

func (r *asnRepository) Create(asn *model.ASN) error {
	return r.db.Create(asn).Error
}

func (r *asnRepository) Update(asn *model.ASN) error {
	return r.db.Save(asn).Error
}

func (r *asnRepository) Delete(id uint) error {
	return r.db.Delete(&model.ASN{}, id).Error
}

func (r *asnRepository) GetAll(filter ASNFilter) ([]model.ASN, error) {
	var asns []model.ASN
	query := r.db.Preload("Role").Preload("UnitKerja")

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("asns.nama LIKE ? OR asns.nip LIKE ?", searchPattern, searchPattern)
	}
	if filter.Role != "" {
		query = query.Joins("JOIN roles ON roles.id = asns.role_id").Where("roles.nama_role = ?", filter.Role)
	}

	err := query.Order("asns.nama").Find(&asns).Error
	return asns, err
}

// Search dipakai pencarian pegawai (nama atau potongan NIP), hanya pegawai aktif.
func (r *asnRepository) Search(q string, limit int) ([]model.ASN, error) {
	var asns []model.ASN
	pattern := "%" + q + "%"
	err := r.db.Preload("UnitKerja").
		Where("is_active = ?", true).
		Where("nama LIKE ? OR nip LIKE ?", pattern, pattern).
		Order("nama").
		Limit(limit).
		Find(&asns).Error
	return asns, err
}

func (r *asnRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.ASN{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
