package routers

import (
	"context"
	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/delivery/http/controllers"
	"medicore-admin-service/internal/app/delivery/http/middlewares"
	"medicore-admin-service/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Controllers struct {
	Auth         *controllers.AuthController
	Workflow     *controllers.WorkflowController
	Organization *controllers.OrganizationController
	User         *controllers.UserController
	Medicine     *controllers.MedicineController
	Lab          *controllers.LabController
	Patient      *controllers.PatientController
	Dashboard    *controllers.DashboardController
	Audit        *controllers.AuditController
}

func SetupRoutes(bootstrap *config.Bootstrap, m *middlewares.Middlewares, c *Controllers) *chi.Mux {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID, constvars.HeaderXAPIKey},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderXExportObject, constvars.HeaderXExportArchiveErr},
		AllowCredentials: false,
	}))
	router.Use(m.RequestID)
	router.Use(m.Logging)
	router.Use(m.Recoverer)
	router.Use(m.Metrics)
	router.Use(httprate.LimitByIP(bootstrap.InternalConfig.App.MaxRequests, 1*time.Minute))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", healthzHandler(bootstrap))

	router.Route("/v1", func(r chi.Router) {
		attachAuthRoutes(r, m, c.Auth)

		r.Group(func(r chi.Router) {
			r.Use(m.Authenticate)
			attachWorkflowRoutes(r, m, c.Workflow)
			attachOrganizationRoutes(r, m, c.Organization)
			attachUserRoutes(r, m, c.User)
			attachMedicineRoutes(r, m, c.Medicine)
			attachLabRoutes(r, m, c.Lab)
			attachPatientRoutes(r, m, c.Patient)
			attachDashboardRoutes(r, m, c.Dashboard)
			attachAuditRoutes(r, m, c.Audit)
		})

		// Machine access for internal automations: the api key stands in
		// for a superadmin session.
		r.Route("/internal", func(r chi.Router) {
			r.Use(m.APIKeyAuth)
			attachOrganizationRoutes(r, m, c.Organization)
			attachAuditRoutes(r, m, c.Audit)
		})
	})

	return router
}

// healthzHandler pings redis and mongo; either failing turns the check red.
func healthzHandler(bootstrap *config.Bootstrap) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := constvars.StatusOK
		checks := map[string]string{"redis": "ok", "mongodb": "ok"}

		if err := bootstrap.Redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = err.Error()
			status = constvars.StatusServiceUnavailable
		}
		if err := bootstrap.MongoDB.Ping(ctx, nil); err != nil {
			checks["mongodb"] = err.Error()
			status = constvars.StatusServiceUnavailable
		}

		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": http.StatusText(status),
			"checks": checks,
		})
	}
}
