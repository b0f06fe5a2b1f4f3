package routes

import (
	"sipensiun/internal/handler"
	"sipensiun/internal/middleware"
	"sipensiun/internal/model"

	"github.com/gofiber/fiber/v2"
)

func SetupUnitKerjaRoutes(app *fiber.App, d Deps) {
	hdl := handler.NewUnitKerjaHandler(d.UnitKerja)
	auth := middleware.Auth(d.Tokens)

	app.Get("/api/unit-kerja", auth, hdl.GetAll)

	admin := app.Group("/api/admin/unit-kerja", auth, middleware.Permission(d.Role, model.PermissionKelolaPegawai))
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.Delete)
}
