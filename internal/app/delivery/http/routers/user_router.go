package routers

import (
	"medicore-admin-service/internal/app/delivery/http/controllers"
	"medicore-admin-service/internal/app/delivery/http/middlewares"
	"medicore-admin-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, m *middlewares.Middlewares, controller *controllers.UserController) {
	router.Route("/users", func(r chi.Router) {
		r.Use(m.RequireRoles(constvars.MedicoreRoleSuperadmin, constvars.MedicoreRoleAdmin))
		r.Get("/", controller.GetUsers)
		r.Post("/", controller.CreateUser)
		r.Patch("/{userId}", controller.PatchUser)
		r.Delete("/{userId}", controller.DeleteUser)
	})
}
