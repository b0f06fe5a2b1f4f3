package database

import (
	"fmt"

	"sipensiun/internal/model"
	"sipensiun/internal/usecase"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// rolePermissions: Superadmin tidak perlu daftar karena di-bypass middleware.
var rolePermissions = map[string][]string{
	model.RoleSuperadmin:  nil,
	model.RoleAdmin:       {model.PermissionKelolaSurat, model.PermissionKelolaPegawai},
	model.RoleVerifikator: {model.PermissionReviewPengajuan},
	model.RoleOperator:    nil,
}

type SeedOptions struct {
	SuperadminNIP      string
	SuperadminPassword string
	// Sample menambahkan beberapa pegawai contoh untuk pengembangan.
	Sample bool
}

// SeedAll idempoten: semua data dicari dulu dengan FirstOrCreate.
func SeedAll(db *gorm.DB, opts SeedOptions, log *zap.Logger) error {
	// 1. Seed Permissions
	perms := map[string]model.Permission{}
	for _, name := range []string{model.PermissionReviewPengajuan, model.PermissionKelolaSurat, model.PermissionKelolaPegawai} {
		p := model.Permission{NamaPermission: name}
		if err := db.FirstOrCreate(&p, model.Permission{NamaPermission: name}).Error; err != nil {
			return fmt.Errorf("seed permission %s: %w", name, err)
		}
		perms[name] = p
	}

	// 2. Seed Roles + relasi permission
	roles := map[string]model.Role{}
	for name, names := range rolePermissions {
		r := model.Role{NamaRole: name}
		if err := db.FirstOrCreate(&r, model.Role{NamaRole: name}).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
		var list []model.Permission
		for _, n := range names {
			list = append(list, perms[n])
		}
		if err := db.Model(&r).Association("Permissions").Replace(list); err != nil {
			return fmt.Errorf("seed permission role %s: %w", name, err)
		}
		roles[name] = r
	}

	// 3. Seed Unit Kerja
	unit := model.UnitKerja{NamaUnit: "Kantor Wilayah Kementerian Agama", Kode: "Kw.18.01"}
	if err := db.FirstOrCreate(&unit, model.UnitKerja{NamaUnit: unit.NamaUnit}).Error; err != nil {
		return fmt.Errorf("seed unit kerja: %w", err)
	}

	// 4. Seed Akun Superadmin
	hashed, err := usecase.HashPassword(opts.SuperadminPassword)
	if err != nil {
		return err
	}
	super := model.ASN{
		Nama:        "Administrator SIPENSIUN",
		NIP:         opts.SuperadminNIP,
		Password:    hashed,
		Jabatan:     "Pranata Komputer",
		RoleID:      roles[model.RoleSuperadmin].ID,
		UnitKerjaID: unit.ID,
		IsActive:    true,
	}
	if err := db.FirstOrCreate(&super, model.ASN{NIP: super.NIP}).Error; err != nil {
		return fmt.Errorf("seed superadmin: %w", err)
	}
	// Paksa update password agar selalu sinkron dengan konfigurasi meskipun user sudah ada
	if err := db.Model(&super).Update("password", hashed).Error; err != nil {
		return err
	}
	log.Info("seeding superadmin berhasil", zap.String("nip", super.NIP))

	if !opts.Sample {
		return nil
	}

	// 5. Seed Pegawai contoh
	samples := []model.ASN{
		{Nama: "Ahmad Fauzi", NIP: "196501011990031001", Jabatan: "Penghulu Ahli Madya", Pangkat: "Pembina", Golongan: "IV/a", TanggalLahir: "1965-01-01", RoleID: roles[model.RoleOperator].ID},
		{Nama: "Siti Aminah", NIP: "196603151991032002", Jabatan: "Analis Kepegawaian", Pangkat: "Penata Tk. I", Golongan: "III/d", TanggalLahir: "1966-03-15", RoleID: roles[model.RoleVerifikator].ID},
		{Nama: "Budi Santoso", NIP: "196812201992031003", Jabatan: "Kepala Subbagian Umum", Pangkat: "Penata", Golongan: "III/c", TanggalLahir: "1968-12-20", RoleID: roles[model.RoleAdmin].ID},
	}
	for _, s := range samples {
		s.Password = hashed
		s.UnitKerjaID = unit.ID
		s.IsActive = true
		if err := db.FirstOrCreate(&s, model.ASN{NIP: s.NIP}).Error; err != nil {
			return fmt.Errorf("seed pegawai %s: %w", s.NIP, err)
		}
	}
	log.Info("seeding pegawai contoh berhasil", zap.Int("jumlah", len(samples)))
	return nil
}
