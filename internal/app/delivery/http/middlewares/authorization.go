package middlewares

import (
	"medicore-admin-service/internal/pkg/exceptions"
	"medicore-admin-service/internal/pkg/utils"
	"net/http"
)

// RequireRoles gates a route on the session role. Runs after Authenticate
// or APIKeyAuth; a missing session is a 401, a wrong role a 403.
func (m *Middlewares) RequireRoles(allowedRoles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := utils.SessionFromContext(r.Context())
			if session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(nil))
				return
			}
			if _, ok := allowed[session.Role]; !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
