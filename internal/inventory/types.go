package inventory

import "time"

// Item mirrors the backend inventory record.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku,omitempty"`
	Category  string    `json:"category,omitempty"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice,omitempty"`
	LowStock  int       `json:"lowStockThreshold,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// CreateRequest is the body for POST /inventory.
type CreateRequest struct {
	Name      string  `json:"name"`
	SKU       string  `json:"sku,omitempty"`
	Category  string  `json:"category,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice,omitempty"`
	LowStock  int     `json:"lowStockThreshold,omitempty"`
}

// UpdateRequest is the body for PATCH /inventory/:id. Nil fields are omitted.
type UpdateRequest struct {
	Name      *string  `json:"name,omitempty"`
	SKU       *string  `json:"sku,omitempty"`
	Category  *string  `json:"category,omitempty"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
	LowStock  *int     `json:"lowStockThreshold,omitempty"`
}
