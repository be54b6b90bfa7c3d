package middleware

import (
	"net/http"
	"strings"

	"fleet-management/fleetboard/internal/auth"
)

// AuthMiddleware requires a valid bearer token and stores its claims on
// the request context.
func AuthMiddleware(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				http.Error(w, "Unauthorized. Invalid bearer token", http.StatusUnauthorized)
				return
			}

			ctx := auth.WithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireWriteMiddleware lets safe methods through and demands a writing
// role for everything else. Requests without claims pass, so it is a no-op
// when AuthMiddleware is not mounted.
func RequireWriteMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			if !auth.MayWrite(r.Context()) {
				claims, _ := auth.ClaimsFrom(r.Context())
				http.Error(w, "Forbidden. Role "+claims.Role().String()+" cannot modify resources", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
