package auth

import (
	"testing"
	"time"

	"github.com/orbitlabs/orbit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUserInfo() models.UserInfo {
	return models.UserInfo{
		ID:        1,
		Email:     "a@x.com",
		FirstName: "A",
		LastName:  "B",
		Role:      models.RoleAdmin,
	}
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "api.orbit", "api.orbit", time.Hour)

	token, expiresAt, err := issuer.Issue(testUserInfo())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	now := time.Now().Unix()
	assert.Greater(t, expiresAt, now)
	assert.LessOrEqual(t, expiresAt, now+int64(time.Hour/time.Second))

	claims, err := issuer.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "A", claims.FirstName)
	assert.Equal(t, "B", claims.LastName)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, testUserInfo(), claims.UserInfo())
	assert.Equal(t, expiresAt, claims.ExpiresAt.Unix())
}

func TestTokenIssuer_Verify_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "api.orbit", "api.orbit", -time.Minute)

	token, _, err := issuer.Issue(testUserInfo())
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenIssuer_Verify_TamperedSignature(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "api.orbit", "api.orbit", time.Hour)
	other := NewTokenIssuer("other-secret", "api.orbit", "api.orbit", time.Hour)

	token, _, err := other.Issue(testUserInfo())
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenIssuer_Verify_IssuerMismatch(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "api.orbit", "api.orbit", time.Hour)
	other := NewTokenIssuer("test-secret", "api.other", "api.orbit", time.Hour)

	token, _, err := other.Issue(testUserInfo())
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrIssuerMismatch)
}

func TestTokenIssuer_Verify_AudienceMismatch(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "api.orbit", "api.orbit", time.Hour)
	other := NewTokenIssuer("test-secret", "api.orbit", "api.other", time.Hour)

	token, _, err := other.Issue(testUserInfo())
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrAudienceMismatch)
}

func TestTokenIssuer_Verify_Malformed(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "api.orbit", "api.orbit", time.Hour)

	_, err := issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
