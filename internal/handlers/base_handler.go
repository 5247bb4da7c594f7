// Package handlers contains the HTTP layer: request decoding, response
// encoding and the translation of domain errors to wire responses.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/orbitlabs/orbit/internal/services"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondMessage sends a {"message": ...} response
func (h *BaseHandler) RespondMessage(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"message": message})
}

// RespondServiceError is the single place mapping domain errors to response
// codes and user-facing messages. Unknown errors are logged and returned as
// the endpoint's generic fallback message so internals never leak.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		h.RespondMessage(w, http.StatusForbidden, "Wrong email or password.")
	case errors.Is(err, services.ErrEmailExists):
		h.RespondMessage(w, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, services.ErrInvalidRole):
		h.RespondMessage(w, http.StatusBadRequest, "Role not allowed")
	case errors.Is(err, services.ErrValidation):
		h.RespondMessage(w, http.StatusBadRequest, fallback)
	default:
		h.Logger.Error("request failed", zap.Error(err))
		h.RespondMessage(w, http.StatusBadRequest, fallback)
	}
}
