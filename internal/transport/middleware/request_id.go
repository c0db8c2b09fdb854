package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/pkg/ctxutil"
)

// RequestID echoes or generates an X-Request-Id header and stores the id
// in the context for log correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
