package main

import (
	"fmt"
	"os"

	"sipensiun/config"
	"sipensiun/internal/database"
	"sipensiun/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var sample bool
	cmd := &cobra.Command{
		Use:   "seeder",
		Short: "Isi data awal: permission, role, unit kerja, superadmin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed(sample)
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVar(&sample, "sample", false, "tambahkan pegawai contoh")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func seed(sample bool) error {
	// Load .env manual karena ini script terpisah
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, "console")
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("memulai database seeding")
	db, err := config.ConnectDB(cfg)
	if err != nil {
		return err
	}

	err = database.SeedAll(db, database.SeedOptions{
		SuperadminNIP:      config.GetEnv("SEED_SUPERADMIN_NIP", "199001012015031001"),
		SuperadminPassword: config.GetEnv("SEED_SUPERADMIN_PASSWORD", "admin12345"),
		Sample:             sample,
	}, log)
	if err != nil {
		return err
	}
	log.Info("seeding selesai", zap.Bool("sample", sample))
	return nil
}
