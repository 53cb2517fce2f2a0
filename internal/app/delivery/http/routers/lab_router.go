package routers

import (
	"medicore-admin-service/internal/app/delivery/http/controllers"
	"medicore-admin-service/internal/app/delivery/http/middlewares"
	"medicore-admin-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachLabRoutes(router chi.Router, m *middlewares.Middlewares, controller *controllers.LabController) {
	router.Route("/lab", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(m.RequireRoles(
				constvars.MedicoreRoleSuperadmin,
				constvars.MedicoreRoleAdmin,
				constvars.MedicoreRoleLabTech,
				constvars.MedicoreRoleDoctor,
				constvars.MedicoreRoleNurse,
			))
			r.Get("/orders", controller.GetLabOrders)
			r.Get("/orders/{orderId}", controller.GetLabOrder)
			r.Get("/orders/{orderId}/print", controller.PrintLabReport)
		})

		r.Group(func(r chi.Router) {
			r.Use(m.RequireRoles(
				constvars.MedicoreRoleSuperadmin,
				constvars.MedicoreRoleAdmin,
				constvars.MedicoreRoleLabTech,
			))
			r.Patch("/orders/{orderId}/status", controller.UpdateLabOrderStatus)
			r.Post("/orders/{orderId}/results", controller.RecordLabResults)
		})
	})
}
