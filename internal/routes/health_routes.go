package routes

import (
	"sipensiun/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func SetupHealthRoutes(app *fiber.App, d Deps) {
	hdl := handler.NewHealthHandler(d.DB, d.Logger)
	app.Get("/healthz", hdl.Check)
}

// SetupAll mendaftarkan seluruh route aplikasi.
func SetupAll(app *fiber.App, d Deps) {
	SetupHealthRoutes(app, d)
	SetupASNRoutes(app, d)
	SetupRoleRoutes(app, d)
	SetupUnitKerjaRoutes(app, d)
	SetupPengajuanRoutes(app, d)
	SetupSuratRoutes(app, d)
	SetupCetakRoutes(app, d)
}
