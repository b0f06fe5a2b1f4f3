package routes

import (
	"sipensiun/internal/handler"
	"sipensiun/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupCetakRoutes(app *fiber.App, d Deps) {
	hdl := handler.NewCetakHandler(handler.CetakDeps{
		Renderer:   d.Renderer,
		Stylesheet: d.PrintStylesheet,
		Surat:      d.Surat,
		Pengajuan:  d.Pengajuan,
		Metrics:    d.Metrics,
		Logger:     d.Logger,
	})

	cetak := app.Group("/cetak", middleware.Auth(d.Tokens))
	cetak.Get("/surat/:jenis", hdl.Surat)
	cetak.Post("/surat/:jenis", hdl.Surat)
	cetak.Get("/letters/:id", hdl.Letter)
	cetak.Get("/pengajuan/:id/checklist", hdl.Checklist)
}
