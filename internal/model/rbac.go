package model

import "gorm.io/gorm"

const (
	RoleSuperadmin  = "Superadmin"
	RoleAdmin       = "Admin"
	RoleVerifikator = "Verifikator"
	RoleOperator    = "Operator"
)

const (
	PermissionReviewPengajuan = "review_pengajuan"
	PermissionKelolaSurat     = "kelola_surat"
	PermissionKelolaPegawai   = "kelola_pegawai"
)

type Role struct {
	gorm.Model
	NamaRole    string       `json:"nama_role" gorm:"unique;not null"`
	Permissions []Permission `json:"permissions" gorm:"many2many:role_permissions;"`
}

func (r Role) HasPermission(name string) bool {
	for _, p := range r.Permissions {
		if p.NamaPermission == name {
			return true
		}
	}
	return false
}

type Permission struct {
	gorm.Model
	NamaPermission string `json:"nama_permission" gorm:"unique;not null"`
}
