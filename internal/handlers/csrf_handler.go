package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/orbitlabs/orbit/internal/auth"
	"go.uber.org/zap"
)

// CSRFHandler exposes the anti-forgery token to the legitimate client
type CSRFHandler struct {
	BaseHandler
	guard *auth.CSRFGuard
}

// NewCSRFHandler creates a new CSRF handler
func NewCSRFHandler(guard *auth.CSRFGuard, logger *zap.Logger) *CSRFHandler {
	return &CSRFHandler{
		BaseHandler: BaseHandler{Logger: logger},
		guard:       guard,
	}
}

// RegisterRoutes registers the CSRF token route
func (h *CSRFHandler) RegisterRoutes(r chi.Router) {
	r.Get("/csrf-token", h.Token)
}

// Token handles GET /api/csrf-token
// @Summary Get the anti-forgery token
// @Description Return the CSRF token bound to the session, to be echoed in X-CSRF-Token on state-changing requests.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "csrfToken"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /csrf-token [get]
func (h *CSRFHandler) Token(w http.ResponseWriter, r *http.Request) {
	token, err := h.guard.Token(r)
	if err != nil {
		h.Logger.Error("failed to derive csrf token", zap.Error(err))
		h.RespondMessage(w, http.StatusBadRequest, "Something went wrong.")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"csrfToken": token})
}
