// Package middleware provides HTTP middleware for the storefront's admin surface.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/abgdnv/storefront/pkg/auth"
)

type contextKey string

const AdminEmailContextKey = contextKey("adminEmail")

// AdminOnly verifies the Bearer token in the Authorization header and admits
// only the configured admin address. Any other verified identity gets 403.
func AdminOnly(verifier auth.Verifier, adminEmail string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			token, err := verifier.Verify(r.Context(), tokenString)
			if err != nil {
				http.Error(w, "Invalid token: "+err.Error(), http.StatusUnauthorized)
				return
			}

			email, ok := auth.EmailClaim(token)
			if !ok {
				http.Error(w, "no claim `email`", http.StatusUnauthorized)
				return
			}
			if !strings.EqualFold(email, adminEmail) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), AdminEmailContextKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextAdminEmail retrieves the verified admin email from the context.
func ContextAdminEmail(ctx context.Context) string {
	value := ctx.Value(AdminEmailContextKey)
	if value != nil {
		return value.(string)
	}
	return ""
}
