package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/orbitlabs/orbit/internal/models"
	"github.com/orbitlabs/orbit/internal/repositories"
	"go.uber.org/zap"
)

// InventoryRepository is the interface that wraps the inventory store
// methods needed by the inventory service
type InventoryRepository interface {
	// ListByOwner retrieves all items owned by the user
	ListByOwner(ctx context.Context, userID int) ([]models.InventoryItem, error)
	// Create inserts a new item for its owner
	Create(ctx context.Context, item *models.InventoryItem) error
	// DeleteByIDAndOwner deletes an item scoped by owner and returns it.
	// repositories.ErrNotFound is returned when the item does not exist or
	// belongs to someone else.
	DeleteByIDAndOwner(ctx context.Context, id, userID int) (*models.InventoryItem, error)
}

// inventoryService implements owner-scoped inventory management
type inventoryService struct {
	inventoryRepo InventoryRepository
	logger        *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo InventoryRepository, logger *zap.Logger) *inventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

// List returns the caller's inventory items
func (s *inventoryService) List(ctx context.Context, ownerID int) ([]models.InventoryItem, error) {
	return s.inventoryRepo.ListByOwner(ctx, ownerID)
}

// Create adds an item to the caller's inventory. The owner always comes from
// the session, never from the request body.
func (s *inventoryService) Create(ctx context.Context, ownerID int, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	if req.Name == "" || req.ItemNumber == "" {
		return nil, fmt.Errorf("%w: name and itemNumber are required", ErrValidation)
	}

	item := &models.InventoryItem{
		UserID:     ownerID,
		Name:       req.Name,
		ItemNumber: req.ItemNumber,
		UnitPrice:  req.UnitPrice,
		Image:      req.Image,
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Delete removes an item from the caller's inventory and returns it.
// Items owned by other users are never touched, even with a valid id.
func (s *inventoryService) Delete(ctx context.Context, ownerID, itemID int) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.DeleteByIDAndOwner(ctx, itemID, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}
