package config

import (
	"fmt"

	"sipensiun/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB membuka koneksi MySQL dan menjalankan AutoMigrate untuk seluruh model.
// Format DSN: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
func ConnectDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("gagal koneksi ke database: %w", err)
	}

	// Auto Migration: Membuat tabel otomatis berdasarkan struct di folder model
	if err := db.AutoMigrate(
		&model.Permission{},
		&model.Role{},
		&model.UnitKerja{},
		&model.ASN{},
		&model.PengajuanPensiun{},
		&model.DokumenPengajuan{},
		&model.Surat{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}
