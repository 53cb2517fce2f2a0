package routers

import (
	"medicore-admin-service/internal/app/delivery/http/controllers"
	"medicore-admin-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, m *middlewares.Middlewares, controller *controllers.AuthController) {
	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", controller.Login)

		r.Group(func(r chi.Router) {
			r.Use(m.Authenticate)
			r.Post("/logout", controller.Logout)
			r.Get("/me", controller.Profile)
		})
	})
}
