package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/orbitlabs/orbit/internal/models"
	"go.uber.org/zap"
)

// inventoryRepository implements the inventory store over MySQL.
// Every query and mutation is scoped by the owning user id.
type inventoryRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *sql.DB, logger *zap.Logger) *inventoryRepository {
	return &inventoryRepository{
		db:     db,
		logger: logger,
	}
}

// ListByOwner retrieves all inventory items owned by the given user
func (r *inventoryRepository) ListByOwner(ctx context.Context, userID int) ([]models.InventoryItem, error) {
	query := `
		SELECT id, user_id, name, item_number, unit_price, image
		FROM inventory_items
		WHERE user_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to list inventory items", zap.Error(err), zap.Int("userId", userID))
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.ItemNumber, &item.UnitPrice, &item.Image); err != nil {
			r.logger.Error("failed to scan inventory item", zap.Error(err))
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory items: %w", err)
	}

	return items, nil
}

// Create inserts a new inventory item for its owner
func (r *inventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (user_id, name, item_number, unit_price, image)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		item.UserID, item.Name, item.ItemNumber, item.UnitPrice, item.Image)
	if err != nil {
		r.logger.Error("failed to create inventory item", zap.Error(err), zap.Int("userId", item.UserID))
		return fmt.Errorf("failed to create inventory item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	item.ID = int(id)
	return nil
}

// DeleteByIDAndOwner deletes an inventory item scoped by owner and returns
// the deleted record. An item owned by someone else is indistinguishable
// from a missing one.
func (r *inventoryRepository) DeleteByIDAndOwner(ctx context.Context, id, userID int) (*models.InventoryItem, error) {
	query := `
		SELECT id, user_id, name, item_number, unit_price, image
		FROM inventory_items
		WHERE id = ? AND user_id = ?
		LIMIT 1
	`

	item := &models.InventoryItem{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&item.ID, &item.UserID, &item.Name, &item.ItemNumber, &item.UnitPrice, &item.Image)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get inventory item", zap.Error(err), zap.Int("userId", userID))
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	deleteQuery := `DELETE FROM inventory_items WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, deleteQuery, id, userID)
	if err != nil {
		r.logger.Error("failed to delete inventory item", zap.Error(err), zap.Int("userId", userID))
		return nil, fmt.Errorf("failed to delete inventory item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return item, nil
}
