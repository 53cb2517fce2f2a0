package routers

import (
	"medicore-admin-service/internal/app/delivery/http/controllers"
	"medicore-admin-service/internal/app/delivery/http/middlewares"
	"medicore-admin-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, m *middlewares.Middlewares, controller *controllers.DashboardController) {
	router.Route("/dashboard", func(r chi.Router) {
		r.Use(m.RequireRoles(constvars.MedicoreRoleSuperadmin, constvars.MedicoreRoleAdmin))
		r.Get("/", controller.GetDashboard)
	})
}
