package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/orbitlabs/orbit/internal/auth"
	"github.com/orbitlabs/orbit/internal/models"
	"go.uber.org/zap"
)

// AccountService is the interface that wraps profile and role management
type AccountService interface {
	// GetBio returns the caller's bio
	GetBio(ctx context.Context, userID int) (string, error)
	// UpdateBio stores the caller's bio and returns the stored value
	UpdateBio(ctx context.Context, userID int, bio string) (string, error)
	// UpdateRole changes the caller's role, validated against the closed set
	UpdateRole(ctx context.Context, userID int, role models.Role) error
	// ListUsers returns the directory view of all users
	ListUsers(ctx context.Context) ([]models.UserProfile, error)
}

// AccountHandler handles bio, role and user directory routes
type AccountHandler struct {
	BaseHandler
	accountService AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		accountService: accountService,
	}
}

// RegisterRoutes registers the session-only account routes
func (h *AccountHandler) RegisterRoutes(r chi.Router) {
	r.Get("/bio", h.GetBio)
	r.Patch("/bio", h.UpdateBio)
}

// RegisterAdminRoutes registers the admin-gated account routes
func (h *AccountHandler) RegisterAdminRoutes(r chi.Router) {
	r.Patch("/user-role", h.UpdateRole)
	r.Get("/users", h.ListUsers)
}

// GetBio handles GET /api/bio
// @Summary Get the caller's bio
// @Tags account
// @Produce json
// @Success 200 {object} map[string]string "bio"
// @Failure 400 {object} map[string]string "Failure"
// @Router /bio [get]
func (h *AccountHandler) GetBio(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		h.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bio, err := h.accountService.GetBio(r.Context(), claims.UserID)
	if err != nil {
		h.RespondServiceError(w, err, "There was a problem updating your bio")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"bio": bio})
}

// updateBioRequest represents a bio update
type updateBioRequest struct {
	Bio string `json:"bio"`
}

// UpdateBio handles PATCH /api/bio
// @Summary Update the caller's bio
// @Tags account
// @Accept json
// @Produce json
// @Param request body updateBioRequest true "New bio"
// @Success 200 {object} map[string]string "Updated bio"
// @Failure 400 {object} map[string]string "Failure"
// @Router /bio [patch]
func (h *AccountHandler) UpdateBio(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		h.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req updateBioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondMessage(w, http.StatusBadRequest, "There was a problem updating your bio")
		return
	}

	bio, err := h.accountService.UpdateBio(r.Context(), claims.UserID, req.Bio)
	if err != nil {
		h.RespondServiceError(w, err, "There was a problem updating your bio")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Bio updated!",
		"bio":     bio,
	})
}

// updateRoleRequest represents a role change
type updateRoleRequest struct {
	Role models.Role `json:"role"`
}

// UpdateRole handles PATCH /api/user-role
// @Summary Change the caller's role
// @Description Update the caller's role. The session keeps its issuance-time role until the next login.
// @Tags account
// @Accept json
// @Produce json
// @Param request body updateRoleRequest true "New role"
// @Success 200 {object} map[string]string "Role updated"
// @Failure 400 {object} map[string]string "Role not allowed"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /user-role [patch]
func (h *AccountHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		h.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondMessage(w, http.StatusBadRequest, "Something went wrong.")
		return
	}

	if err := h.accountService.UpdateRole(r.Context(), claims.UserID, req.Role); err != nil {
		h.RespondServiceError(w, err, "Something went wrong.")
		return
	}

	h.RespondMessage(w, http.StatusOK,
		"User role updated. You must log in again for the changes to take effect.")
}

// ListUsers handles GET /api/users
// @Summary List user profiles
// @Tags account
// @Produce json
// @Success 200 {object} map[string][]models.UserProfile "users"
// @Failure 400 {object} map[string]string "Failure"
// @Router /users [get]
func (h *AccountHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.accountService.ListUsers(r.Context())
	if err != nil {
		h.RespondServiceError(w, err, "There was a problem getting the users")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.UserProfile{"users": users})
}
