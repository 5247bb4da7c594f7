package auth

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
)

// CSRFCookieName holds the per-session anti-forgery secret
const CSRFCookieName = "_csrf"

// CSRFHeaderName is the header mutating requests must echo the token in
const CSRFHeaderName = "X-CSRF-Token"

const csrfSecretKey contextKey = "csrfSecret"

// CSRFGuard implements double-submit anti-forgery protection. A random
// secret lives in an HTTP-only cookie; the token handed to the client is an
// HMAC of that secret under a server-held key, so a token is only valid
// together with the cookie it was derived from.
type CSRFGuard struct {
	key []byte
}

// NewCSRFGuard creates a CSRF guard keyed with the given server secret
func NewCSRFGuard(key string) *CSRFGuard {
	return &CSRFGuard{key: []byte(key)}
}

// Middleware lazily issues the secret cookie on the first protected request
// and validates the echoed token on every state-changing one. Idempotent
// reads (GET/HEAD/OPTIONS) are exempt from validation.
func (g *CSRFGuard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret, fresh, err := g.ensureSecret(w, r)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Something went wrong."}`))
			return
		}

		ctx := context.WithValue(r.Context(), csrfSecretKey, secret)
		r = r.WithContext(ctx)

		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		// A cookie issued on this very request cannot have produced a token
		// the client already holds.
		token := r.Header.Get(CSRFHeaderName)
		if fresh || token == "" || !g.validToken(secret, token) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"Invalid CSRF token"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Token derives the anti-forgery token for the secret attached to the
// request context. Only meaningful on requests that passed Middleware.
func (g *CSRFGuard) Token(r *http.Request) (string, error) {
	secret, ok := r.Context().Value(csrfSecretKey).(string)
	if !ok || secret == "" {
		return "", fmt.Errorf("no csrf secret on request")
	}
	return g.tokenFor(secret), nil
}

// ensureSecret returns the session's CSRF secret, minting and setting the
// cookie when absent. fresh reports whether the cookie was created now.
func (g *CSRFGuard) ensureSecret(w http.ResponseWriter, r *http.Request) (string, bool, error) {
	if cookie, err := r.Cookie(CSRFCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, false, nil
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", false, fmt.Errorf("failed to generate csrf secret: %w", err)
	}
	secret := base64.RawURLEncoding.EncodeToString(raw)

	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    secret,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return secret, true, nil
}

func (g *CSRFGuard) tokenFor(secret string) string {
	mac := hmac.New(sha256.New, g.key)
	mac.Write([]byte(secret))
	return hex.EncodeToString(mac.Sum(nil))
}

func (g *CSRFGuard) validToken(secret, token string) bool {
	expected := g.tokenFor(secret)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(token)) == 1
}
