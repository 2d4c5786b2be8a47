package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vk-arghya/booking-site-like-tod0/internal/auth"
	"github.com/vk-arghya/booking-site-like-tod0/internal/httputil"
)

type ctxKey string

const IdentityKey ctxKey = "identity"

// RequireAuth guards a route group: no token is 401, a token that fails
// verification is 403. The 403 body is the same for malformed, forged and
// expired tokens so callers learn nothing about which check tripped.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// token from Authorization: Bearer <jwt>
			raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if raw == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing token")
				return
			}

			claims, err := auth.ParseToken(raw, secret)
			if err != nil {
				httputil.RespondError(w, http.StatusForbidden, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
