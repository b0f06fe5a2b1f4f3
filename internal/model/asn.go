package model

import "gorm.io/gorm"

type ASN struct {
	gorm.Model
	UnitKerjaID  uint   `json:"unit_kerja_id"`
	RoleID       uint   `json:"role_id"`
	Nama         string `json:"nama"`
	NIP          string `json:"nip" gorm:"column:nip;size:18;unique;not null"` // Selalu digit saja
	Password     string `json:"-"`
	Email        string `json:"email"`
	NoHP         string `json:"no_hp"`
	Jabatan      string `json:"jabatan"`
	Pangkat      string `json:"pangkat"`  // Contoh: Penata Tk. I
	Golongan     string `json:"golongan"` // Contoh: III/d
	TanggalLahir string `json:"tanggal_lahir"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`

	// Relasi
	Role      Role      `json:"role" gorm:"foreignKey:RoleID"`
	UnitKerja UnitKerja `json:"unit_kerja" gorm:"foreignKey:UnitKerjaID"`
}

// PangkatGolongan menggabungkan pangkat dan golongan untuk ditampilkan di surat.
func (a ASN) PangkatGolongan() string {
	switch {
	case a.Pangkat != "" && a.Golongan != "":
		return a.Pangkat + " (" + a.Golongan + ")"
	case a.Pangkat != "":
		return a.Pangkat
	default:
		return a.Golongan
	}
}
