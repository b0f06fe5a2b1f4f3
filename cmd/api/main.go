package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sipensiun/config"
	"sipensiun/internal/cache"
	"sipensiun/internal/logger"
	"sipensiun/internal/metrics"
	"sipensiun/internal/notify"
	"sipensiun/internal/render"
	"sipensiun/internal/repository"
	"sipensiun/internal/routes"
	"sipensiun/internal/storage"
	"sipensiun/internal/token"
	"sipensiun/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gagal membuat logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server berhenti", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("mencoba koneksi ke database")
	db, err := config.ConnectDB(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	log.Info("database berhasil terhubung")

	files, err := newStorage(ctx, cfg)
	if err != nil {
		return err
	}

	var notifier notify.Notifier = notify.Nop{}
	if cfg.SMTP.Enabled() {
		notifier = notify.NewMailer(notify.SMTPOptions{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}, log)
	}

	renderer, err := render.New(cfg.Origin)
	if err != nil {
		return err
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	asnRepo := repository.NewASNRepository(db)
	suratRepo := repository.NewSuratRepository(db)

	deps := routes.Deps{
		Tokens:    tokens,
		Logger:    log,
		Cache:     cache.NewService(nil),
		ASN:       asnRepo,
		Role:      repository.NewRoleRepository(db),
		UnitKerja: repository.NewUnitKerjaRepository(db),
		Auth:      usecase.NewAuthUsecase(asnRepo, tokens),
		Pengajuan: usecase.NewPengajuanUsecase(usecase.PengajuanDeps{
			Pengajuan: repository.NewPengajuanRepository(db),
			Dokumen:   repository.NewDokumenRepository(db),
			ASN:       asnRepo,
			Storage:   files,
			Notifier:  notifier,
			Metrics:   m,
			Logger:    log,
		}),
		Surat:           usecase.NewSuratUsecase(suratRepo, m),
		Renderer:        renderer,
		PrintStylesheet: cfg.PrintStylesheet,
		KodeSurat:       cfg.KodeSurat,
		Metrics:         m,
		DB:              sqlDB,
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 4 * 1024 * 1024,
	})

	// Middleware Global
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.Origin}))
	app.Use(fiberlogger.New())

	// Berkas unggahan lokal dan aset cetak (logo, print.css)
	app.Static("/uploads", cfg.UploadDir)
	app.Static("/static", "./static")
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	routes.SetupAll(app, deps)

	go func() {
		<-ctx.Done()
		log.Info("menghentikan server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Warn("shutdown tidak bersih", zap.Error(err))
		}
	}()

	log.Info("server siap", zap.String("port", cfg.Port), zap.String("origin", cfg.Origin))
	return app.Listen(":" + cfg.Port)
}

// newStorage memilih S3 bila bucket dikonfigurasi, selain itu disk lokal.
func newStorage(ctx context.Context, cfg config.Config) (storage.FileStorage, error) {
	if cfg.S3.Enabled() {
		return storage.NewS3(ctx, storage.S3Options{
			Bucket:       cfg.S3.Bucket,
			Region:       cfg.S3.Region,
			Endpoint:     cfg.S3.Endpoint,
			AccessKey:    cfg.S3.AccessKey,
			SecretKey:    cfg.S3.SecretKey,
			UsePathStyle: cfg.S3.UsePathStyle,
		})
	}
	return storage.NewDisk(cfg.UploadDir, "/uploads")
}
