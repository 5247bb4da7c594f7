package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/orbitlabs/orbit/internal/auth"
	"github.com/orbitlabs/orbit/internal/models"
	"github.com/orbitlabs/orbit/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubAccountService records calls and returns canned values
type stubAccountService struct {
	bio        string
	bioErr     error
	roleErr    error
	users      []models.UserProfile
	lastUserID int
	lastBio    string
	lastRole   models.Role
}

func (s *stubAccountService) GetBio(ctx context.Context, userID int) (string, error) {
	s.lastUserID = userID
	return s.bio, s.bioErr
}

func (s *stubAccountService) UpdateBio(ctx context.Context, userID int, bio string) (string, error) {
	s.lastUserID = userID
	s.lastBio = bio
	if s.bioErr != nil {
		return "", s.bioErr
	}
	return bio, nil
}

func (s *stubAccountService) UpdateRole(ctx context.Context, userID int, role models.Role) error {
	s.lastUserID = userID
	s.lastRole = role
	return s.roleErr
}

func (s *stubAccountService) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	return s.users, nil
}

func testSessionIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer("test-secret", "api.orbit", "api.orbit", time.Hour)
}

func adminCookie(t *testing.T, issuer *auth.TokenIssuer, userID int) *http.Cookie {
	t.Helper()
	token, _, err := issuer.Issue(models.UserInfo{
		ID:        userID,
		Email:     "a@x.com",
		FirstName: "A",
		LastName:  "B",
		Role:      models.RoleAdmin,
	})
	require.NoError(t, err)
	return &http.Cookie{Name: auth.SessionCookieName, Value: token}
}

func newAccountRouter(service AccountService, issuer *auth.TokenIssuer) chi.Router {
	handler := NewAccountHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(issuer))
			handler.RegisterRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				handler.RegisterAdminRoutes(r)
			})
		})
	})
	return r
}

func TestAccountHandler_GetBio(t *testing.T) {
	issuer := testSessionIssuer()
	service := &stubAccountService{bio: "hello"}
	router := newAccountRouter(service, issuer)

	req := httptest.NewRequest(http.MethodGet, "/api/bio", nil)
	req.AddCookie(adminCookie(t, issuer, 3))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bio":"hello"}`, rec.Body.String())
	assert.Equal(t, 3, service.lastUserID)
}

func TestAccountHandler_UpdateBio(t *testing.T) {
	issuer := testSessionIssuer()
	service := &stubAccountService{}
	router := newAccountRouter(service, issuer)

	body, err := json.Marshal(map[string]string{"bio": "new bio"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/api/bio", bytes.NewReader(body))
	req.AddCookie(adminCookie(t, issuer, 3))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Bio updated!","bio":"new bio"}`, rec.Body.String())
	assert.Equal(t, "new bio", service.lastBio)
}

func TestAccountHandler_UpdateRole(t *testing.T) {
	tests := []struct {
		name           string
		role           string
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "valid role",
			role:           "user",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"User role updated. You must log in again for the changes to take effect."}`,
		},
		{
			name:           "rejected role",
			role:           "superuser",
			serviceErr:     services.ErrInvalidRole,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Role not allowed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := testSessionIssuer()
			service := &stubAccountService{roleErr: tt.serviceErr}
			router := newAccountRouter(service, issuer)

			body, err := json.Marshal(map[string]string{"role": tt.role})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPatch, "/api/user-role", bytes.NewReader(body))
			req.AddCookie(adminCookie(t, issuer, 3))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			assert.Equal(t, models.Role(tt.role), service.lastRole)
		})
	}
}

func TestAccountHandler_ListUsers(t *testing.T) {
	issuer := testSessionIssuer()
	service := &stubAccountService{users: []models.UserProfile{
		{ID: 1, FirstName: "A", LastName: "B", Bio: "hello"},
	}}
	router := newAccountRouter(service, issuer)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.AddCookie(adminCookie(t, issuer, 3))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]models.UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp["users"], 1)
	assert.Equal(t, "A", resp["users"][0].FirstName)
}

func TestAccountHandler_RequiresSession(t *testing.T) {
	issuer := testSessionIssuer()
	router := newAccountRouter(&stubAccountService{}, issuer)

	req := httptest.NewRequest(http.MethodGet, "/api/bio", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())
}

func TestAccountHandler_AdminRoutesRequireAdmin(t *testing.T) {
	issuer := testSessionIssuer()
	router := newAccountRouter(&stubAccountService{}, issuer)

	token, _, err := issuer.Issue(models.UserInfo{ID: 3, Email: "u@x.com", Role: models.RoleUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Forbidden"}`, rec.Body.String())
}
