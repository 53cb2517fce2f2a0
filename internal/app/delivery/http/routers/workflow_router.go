package routers

import (
	"medicore-admin-service/internal/app/delivery/http/controllers"
	"medicore-admin-service/internal/app/delivery/http/middlewares"
	"medicore-admin-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachWorkflowRoutes(router chi.Router, m *middlewares.Middlewares, controller *controllers.WorkflowController) {
	router.Route("/workflow", func(r chi.Router) {
		r.Use(m.RequireRoles(constvars.MedicoreRoleSuperadmin, constvars.MedicoreRoleAdmin))
		r.Get("/tasks", controller.GetTasks)
		r.Post("/tasks/{taskId}/approve", controller.ApproveTask)
		r.Post("/tasks/{taskId}/reject", controller.RejectTask)
	})
}
