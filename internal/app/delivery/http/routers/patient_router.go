package routers

import (
	"medicore-admin-service/internal/app/delivery/http/controllers"
	"medicore-admin-service/internal/app/delivery/http/middlewares"
	"medicore-admin-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, m *middlewares.Middlewares, controller *controllers.PatientController) {
	router.Route("/patients", func(r chi.Router) {
		r.Use(m.RequireRoles(
			constvars.MedicoreRoleSuperadmin,
			constvars.MedicoreRoleAdmin,
			constvars.MedicoreRoleDoctor,
			constvars.MedicoreRoleNurse,
			constvars.MedicoreRoleReceptionist,
		))
		r.Get("/", controller.GetPatients)
		r.Get("/{patientId}", controller.GetPatient)
		r.Get("/{patientId}/prescriptions", controller.GetPrescriptions)
		r.Get("/{patientId}/prescriptions/{prescriptionId}/print", controller.PrintPrescription)
	})
}
