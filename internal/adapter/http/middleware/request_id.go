package middleware

import (
	"net/http"

	"github.com/google/uuid"

	wrap "github.com/spinwager/casino-backend/pkg/logger/wrapper"
)

const requestIDHeader = "X-Request-Id"

// RequestID injects a request ID into the logging context and echoes it back
// in the response header. A client-supplied X-Request-Id is kept.
func (m *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)

		ctx := wrap.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
