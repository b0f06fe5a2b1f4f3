package routes

import (
	"sipensiun/internal/handler"
	"sipensiun/internal/middleware"
	"sipensiun/internal/model"

	"github.com/gofiber/fiber/v2"
)

func SetupASNRoutes(app *fiber.App, d Deps) {
	hdl := handler.NewASNHandler(d.Auth, d.ASN, d.Logger)
	auth := middleware.Auth(d.Tokens)

	// Auth Routes
	app.Post("/api/login", hdl.Login)
	app.Get("/api/auth/me", auth, hdl.Me)
	app.Put("/api/auth/password", auth, hdl.ChangePassword)

	// Impersonasi hanya untuk Superadmin. Stop dipanggil dengan token hasil impersonasi,
	// jadi tidak dibatasi role; usecase memeriksa impersonator_id.
	app.Post("/api/admin/impersonate/:id", auth, middleware.Role(model.RoleSuperadmin), hdl.Impersonate)
	app.Delete("/api/admin/impersonate/:id", auth, hdl.StopImpersonation)

	// Admin Routes (Kelola Pegawai)
	admin := app.Group("/api/admin/users", auth, middleware.Permission(d.Role, model.PermissionKelolaPegawai))
	admin.Get("/", hdl.ListUsers)
	admin.Post("/", hdl.CreateASN)

	pegawai := handler.NewPegawaiHandler(d.ASN, d.Cache, d.Logger)
	app.Get("/api/pegawai/search", auth, pegawai.Search)
}
