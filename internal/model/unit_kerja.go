package model

import "gorm.io/gorm"

type UnitKerja struct {
	gorm.Model
	NamaUnit string `json:"nama_unit" gorm:"not null"`
	Kode     string `json:"kode"` // Kode satuan kerja, contoh: Kw.18.01
	Alamat   string `json:"alamat"`
}
