package models

// InventoryItem represents an inventory record owned by a single user.
// Every query and delete against it is scoped by UserID.
type InventoryItem struct {
	ID         int     `json:"id"`
	UserID     int     `json:"user"`
	Name       string  `json:"name"`
	ItemNumber string  `json:"itemNumber"`
	UnitPrice  float64 `json:"unitPrice"`
	Image      string  `json:"image,omitempty"`
}

// CreateInventoryItemRequest represents the item fields supplied by the caller.
// The owner is always taken from the session, never from the body.
type CreateInventoryItemRequest struct {
	Name       string  `json:"name"`
	ItemNumber string  `json:"itemNumber"`
	UnitPrice  float64 `json:"unitPrice"`
	Image      string  `json:"image,omitempty"`
}
