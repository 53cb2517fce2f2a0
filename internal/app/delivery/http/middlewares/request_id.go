package middlewares

import (
	"context"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/utils"
	"net/http"
)

// RequestID honors a client-supplied X-Request-ID and generates one
// otherwise; the id rides the context and is echoed on the response.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientProvided := requestID != ""
		if !isClientProvided {
			requestID = utils.GenerateRequestID()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientProvided)

		w.Header().Set(constvars.HeaderXRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
