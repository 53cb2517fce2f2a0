package routers

import (
	"medicore-admin-service/internal/app/delivery/http/controllers"
	"medicore-admin-service/internal/app/delivery/http/middlewares"
	"medicore-admin-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMedicineRoutes(router chi.Router, m *middlewares.Middlewares, controller *controllers.MedicineController) {
	router.Route("/medicines", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(m.RequireRoles(
				constvars.MedicoreRoleSuperadmin,
				constvars.MedicoreRoleAdmin,
				constvars.MedicoreRolePharmacist,
				constvars.MedicoreRoleDoctor,
				constvars.MedicoreRoleNurse,
			))
			r.Get("/", controller.GetMedicines)
		})

		r.Group(func(r chi.Router) {
			r.Use(m.RequireRoles(
				constvars.MedicoreRoleSuperadmin,
				constvars.MedicoreRoleAdmin,
				constvars.MedicoreRolePharmacist,
			))
			r.Post("/", controller.CreateMedicine)
			r.Put("/{medicineId}", controller.UpdateMedicine)
			r.Delete("/{medicineId}", controller.DeleteMedicine)
			r.Post("/{medicineId}/reorder", controller.ReorderMedicine)
			r.Get("/export", controller.ExportMedicines)
		})
	})
}
