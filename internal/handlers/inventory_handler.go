package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/orbitlabs/orbit/internal/auth"
	"github.com/orbitlabs/orbit/internal/models"
	"go.uber.org/zap"
)

// InventoryService is the interface that wraps owner-scoped inventory logic
type InventoryService interface {
	// List returns the caller's items
	List(ctx context.Context, ownerID int) ([]models.InventoryItem, error)
	// Create adds an item owned by the caller
	Create(ctx context.Context, ownerID int, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error)
	// Delete removes a caller-owned item and returns it.
	// services.ErrNotFound is returned for missing or foreign items alike.
	Delete(ctx context.Context, ownerID, itemID int) (*models.InventoryItem, error)
}

// InventoryHandler handles the inventory routes
type InventoryHandler struct {
	BaseHandler
	inventoryService InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService InventoryService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		BaseHandler:      BaseHandler{Logger: logger},
		inventoryService: inventoryService,
	}
}

// RegisterRoutes registers the inventory routes (admin-gated by the caller)
func (h *InventoryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/inventory", h.List)
	r.Post("/inventory", h.Create)
	r.Delete("/inventory/{id}", h.Delete)
}

// List handles GET /api/inventory
// @Summary List the caller's inventory
// @Tags inventory
// @Produce json
// @Success 200 {array} models.InventoryItem "Items"
// @Failure 400 {object} map[string]string "Failure"
// @Router /inventory [get]
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		h.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	items, err := h.inventoryService.List(r.Context(), claims.UserID)
	if err != nil {
		h.RespondServiceError(w, err, "There was a problem getting the items")
		return
	}

	h.RespondJSON(w, http.StatusOK, items)
}

// Create handles POST /api/inventory
// @Summary Add an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body models.CreateInventoryItemRequest true "Item fields"
// @Success 201 {object} map[string]any "Item created"
// @Failure 400 {object} map[string]string "Failure"
// @Router /inventory [post]
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		h.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.CreateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondMessage(w, http.StatusBadRequest, "There was a problem creating the item")
		return
	}

	item, err := h.inventoryService.Create(r.Context(), claims.UserID, &req)
	if err != nil {
		h.RespondServiceError(w, err, "There was a problem creating the item")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"message":       "Inventory item created!",
		"inventoryItem": item,
	})
}

// Delete handles DELETE /api/inventory/{id}
// @Summary Delete an inventory item
// @Description Delete a caller-owned item by id. Items owned by other users are never touched.
// @Tags inventory
// @Produce json
// @Param id path int true "Item id"
// @Success 201 {object} map[string]any "Item deleted"
// @Failure 400 {object} map[string]string "Failure"
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		h.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondMessage(w, http.StatusBadRequest, "There was a problem deleting the item.")
		return
	}

	item, err := h.inventoryService.Delete(r.Context(), claims.UserID, itemID)
	if err != nil {
		h.RespondServiceError(w, err, "There was a problem deleting the item.")
		return
	}

	// 201 on delete mirrors the original API, preserved for compatibility
	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"message":     "Inventory item deleted!",
		"deletedItem": item,
	})
}
