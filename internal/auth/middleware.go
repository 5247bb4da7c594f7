package auth

import (
	"context"
	"net/http"

	"github.com/orbitlabs/orbit/internal/models"
)

type contextKey string

const claimsKey contextKey = "sessionClaims"

// SessionCookieName is the HTTP-only cookie carrying the session token
const SessionCookieName = "token"

// Middleware verifies the session cookie on every request and attaches the
// verified claims to the request context. The token is read from the cookie
// only, never from a header, so it stays inaccessible to page scripts.
func Middleware(issuer *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				respondUnauthorized(w)
				return
			}

			claims, err := issuer.Verify(cookie.Value)
			if err != nil {
				respondUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a route on the attached claims' role. It is a pure
// claim check: a role changed after issuance takes effect only once the
// holder re-authenticates.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			respondUnauthorized(w)
			return
		}

		if claims.Role != models.RoleAdmin {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"Forbidden"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext retrieves the verified session claims from context
func ClaimsFromContext(ctx context.Context) (*SessionClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*SessionClaims)
	return claims, ok
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"message":"Unauthorized"}`))
}
