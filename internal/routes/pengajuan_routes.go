package routes

import (
	"sipensiun/internal/handler"
	"sipensiun/internal/middleware"
	"sipensiun/internal/model"

	"github.com/gofiber/fiber/v2"
)

func SetupPengajuanRoutes(app *fiber.App, d Deps) {
	hdl := handler.NewPengajuanHandler(d.Pengajuan, d.Logger)
	dok := handler.NewDokumenHandler(d.Pengajuan, d.Logger)
	ref := handler.NewReferensiHandler(d.KodeSurat)
	auth := middleware.Auth(d.Tokens)
	review := middleware.Permission(d.Role, model.PermissionReviewPengajuan)

	app.Get("/api/referensi/dokumen", auth, ref.Dokumen)
	app.Get("/api/referensi/nomor-surat", auth, ref.NomorSurat)

	api := app.Group("/api/pengajuan", auth)
	api.Get("/", hdl.List)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.Get)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
	api.Post("/:id/submit", hdl.Submit)
	api.Put("/:id/status", review, hdl.UpdateStatus)

	files := app.Group("/api/files", auth)
	files.Post("/upload", dok.Upload)
	files.Delete("/:id", dok.Delete)
	files.Put("/:id/kepatuhan", review, dok.SetKepatuhan)
}
