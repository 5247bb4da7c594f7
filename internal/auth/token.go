// Package auth provides session token issuance and verification, password
// hashing, and the request authorization middleware.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/orbitlabs/orbit/internal/models"
)

// Verification failures. Verify wraps the underlying jwt error, so callers
// can use errors.Is against these sentinels.
var (
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrTokenExpired     = errors.New("token expired")
	ErrIssuerMismatch   = errors.New("token issuer mismatch")
	ErrAudienceMismatch = errors.New("token audience mismatch")
	ErrTokenMalformed   = errors.New("token malformed")
)

// SessionClaims is the identity data embedded in a signed session token.
// Trusted only after signature/expiry verification.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID    int         `json:"userId"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Role      models.Role `json:"role"`
	Avatar    string      `json:"avatar,omitempty"`
}

// UserInfo rebuilds the identity view carried by the claims.
func (c *SessionClaims) UserInfo() models.UserInfo {
	return models.UserInfo{
		ID:        c.UserID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Role:      c.Role,
		Avatar:    c.Avatar,
	}
}

// TokenIssuer mints and validates signed, time-bounded session tokens
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewTokenIssuer creates a new token issuer
func NewTokenIssuer(secret, issuer, audience string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Issue serializes the identity view plus issuer, audience and expiry
// (now + TTL) into an HS256-signed token. Returns the token and the expiry
// as seconds since epoch.
func (ti *TokenIssuer) Issue(info models.UserInfo) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(ti.ttl)

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(info.ID),
			Issuer:    ti.issuer,
			Audience:  jwt.ClaimStrings{ti.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:    info.ID,
		Email:     info.Email,
		FirstName: info.FirstName,
		LastName:  info.LastName,
		Role:      info.Role,
		Avatar:    info.Avatar,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ti.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

// Verify checks signature, issuer, audience and expiry against server time
// (no clock-skew leeway) and returns the claims on success.
func (ti *TokenIssuer) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ti.secret, nil
	},
		jwt.WithIssuer(ti.issuer),
		jwt.WithAudience(ti.audience),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", classifyTokenError(err), err)
	}

	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

// classifyTokenError maps jwt/v5 validation errors onto the package sentinels
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuerMismatch
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrAudienceMismatch
	default:
		return ErrTokenMalformed
	}
}
