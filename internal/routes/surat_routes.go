package routes

import (
	"sipensiun/internal/handler"
	"sipensiun/internal/middleware"
	"sipensiun/internal/model"

	"github.com/gofiber/fiber/v2"
)

func SetupSuratRoutes(app *fiber.App, d Deps) {
	hdl := handler.NewSuratHandler(d.Surat, d.Logger)
	auth := middleware.Auth(d.Tokens)
	kelola := middleware.Permission(d.Role, model.PermissionKelolaSurat)

	api := app.Group("/api/letters", auth)
	api.Get("/", hdl.List)
	api.Get("/:id", hdl.Get)
	api.Post("/", kelola, hdl.Create)
	api.Put("/:id", kelola, hdl.Update)
	api.Delete("/:id", kelola, hdl.Delete)
}
