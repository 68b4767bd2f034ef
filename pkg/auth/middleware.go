package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const operatorIDKey contextKey = "operator_id"

// OperatorIDFromContext returns the authenticated operator's ID, if any.
func OperatorIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(operatorIDKey).(string)
	return v, ok
}

// WithOperatorID stores the operator ID in the context.
func WithOperatorID(ctx context.Context, operatorID string) context.Context {
	return context.WithValue(ctx, operatorIDKey, operatorID)
}

// RequireAuth verifies the admin session cookie and puts the operator ID in
// the request context. Requests without a valid session get 401.
func RequireAuth(sessionSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			operatorID, err := VerifySessionToken(cookie.Value, sessionSecret)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_session"})
				return
			}

			ctx := WithOperatorID(r.Context(), operatorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DevOperatorID is the dummy operator used when auth is disabled in dev.
const DevOperatorID = "dev-operator"

// DevAuth injects a dummy operator ID for local development
// (AUTH_REQUIRED=false).
func DevAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithOperatorID(r.Context(), DevOperatorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
