package routes

import (
	"sipensiun/internal/handler"
	"sipensiun/internal/middleware"
	"sipensiun/internal/model"

	"github.com/gofiber/fiber/v2"
)

func SetupRoleRoutes(app *fiber.App, d Deps) {
	hdl := handler.NewRoleHandler(d.Role)

	api := app.Group("/api/admin/roles", middleware.Auth(d.Tokens), middleware.Role(model.RoleSuperadmin, model.RoleAdmin))
	api.Get("/", hdl.GetAll)
	api.Get("/permissions", hdl.GetPermissions) // List semua permission yang tersedia
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
