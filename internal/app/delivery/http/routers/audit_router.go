package routers

import (
	"medicore-admin-service/internal/app/delivery/http/controllers"
	"medicore-admin-service/internal/app/delivery/http/middlewares"
	"medicore-admin-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuditRoutes(router chi.Router, m *middlewares.Middlewares, controller *controllers.AuditController) {
	router.Route("/audit", func(r chi.Router) {
		r.Use(m.RequireRoles(constvars.MedicoreRoleSuperadmin, constvars.MedicoreRoleAdmin))
		r.Get("/events", controller.GetAuditEvents)
	})
}
