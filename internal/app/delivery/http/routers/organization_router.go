package routers

import (
	"medicore-admin-service/internal/app/delivery/http/controllers"
	"medicore-admin-service/internal/app/delivery/http/middlewares"
	"medicore-admin-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachOrganizationRoutes(router chi.Router, m *middlewares.Middlewares, controller *controllers.OrganizationController) {
	router.Route("/superadmin", func(r chi.Router) {
		r.Use(m.RequireRoles(constvars.MedicoreRoleSuperadmin))
		r.Get("/organizations", controller.GetOrganizations)
		r.Post("/organizations", controller.CreateOrganization)
		r.Patch("/organizations/{organizationId}/status", controller.UpdateOrganizationStatus)
		r.Delete("/organizations/{organizationId}", controller.DeleteOrganization)
		r.Get("/overview", controller.GetOverview)
	})
}
