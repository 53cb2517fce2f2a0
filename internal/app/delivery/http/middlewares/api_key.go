package middlewares

import (
	"context"
	"crypto/subtle"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/exceptions"
	"medicore-admin-service/internal/pkg/utils"
	"net/http"
)

// APIKeyAuth authenticates machine callers on the x-api-key header. A valid
// key gets a synthetic superadmin session so downstream code never has to
// care which door the caller came through.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)
		if apiKey == "" || m.InternalConfig.App.ServiceAPIKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.InternalConfig.App.ServiceAPIKey)) != 1 {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		session := &models.Session{
			UserID: "service",
			Name:   "Service",
			Role:   constvars.MedicoreRoleSuperadmin,
		}
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH_KEY, true)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
