package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/orbitlabs/orbit/internal/auth"
	"github.com/orbitlabs/orbit/internal/models"
	"github.com/orbitlabs/orbit/internal/services"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps the authentication flows
type AuthService interface {
	// Authenticate verifies credentials and mints a session.
	// services.ErrInvalidCredentials covers unknown email and password
	// mismatch alike.
	Authenticate(ctx context.Context, req *models.AuthenticateRequest) (*services.Session, error)
	// SignUp creates a new account and mints a session.
	// services.ErrEmailExists is returned on duplicate email.
	SignUp(ctx context.Context, req *models.SignupRequest) (*services.Session, error)
}

// AuthHandler handles the authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers the authentication routes.
// Note: these sit before the session middleware; everything else comes after.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/authenticate", h.Authenticate)
	r.Post("/signup", h.Signup)
}

// Authenticate handles POST /api/authenticate
// @Summary Authenticate a user
// @Description Verify email and password, set the session cookie and return the session claims and expiry.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.AuthenticateRequest true "Credentials"
// @Success 200 {object} models.AuthResponse "Authentication successful"
// @Failure 403 {object} map[string]string "Wrong email or password"
// @Failure 400 {object} map[string]string "Something went wrong"
// @Router /authenticate [post]
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req models.AuthenticateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondMessage(w, http.StatusBadRequest, "Something went wrong.")
		return
	}

	session, err := h.authService.Authenticate(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "Something went wrong.")
		return
	}

	setSessionCookie(w, session.Token)

	h.RespondJSON(w, http.StatusOK, models.AuthResponse{
		Message:   "Authentication successful!",
		UserInfo:  session.UserInfo,
		ExpiresAt: session.ExpiresAt,
	})
}

// signupUserInfo is the claims subset returned by signup
type signupUserInfo struct {
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
}

// Signup handles POST /api/signup
// @Summary Create a new account
// @Description Create a user, set the session cookie and return the claims subset and expiry.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "New account"
// @Success 200 {object} map[string]any "User created"
// @Failure 400 {object} map[string]string "Email already exists or other failure"
// @Router /signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondMessage(w, http.StatusBadRequest, "There was a problem creating your account")
		return
	}

	session, err := h.authService.SignUp(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "There was a problem creating your account")
		return
	}

	setSessionCookie(w, session.Token)

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "User created!",
		"userInfo": signupUserInfo{
			FirstName: session.UserInfo.FirstName,
			LastName:  session.UserInfo.LastName,
			Email:     session.UserInfo.Email,
			Role:      session.UserInfo.Role,
		},
		"expiresAt": session.ExpiresAt,
	})
}

// setSessionCookie sets the signed session token as an HTTP-only cookie
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
