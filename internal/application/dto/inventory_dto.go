package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddItemRequest entrada para agregar un artículo al inventario de una tienda.
type AddItemRequest struct {
	Name  string          `json:"name" validate:"required,min=1,max=200"`
	Price decimal.Decimal `json:"price"`
	Stock int64           `json:"stock" validate:"min=0"`
}

// UpdateItemRequest actualización parcial: los campos omitidos conservan su valor.
type UpdateItemRequest struct {
	Name  *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price *decimal.Decimal `json:"price"`
	Stock *int64           `json:"stock" validate:"omitempty,min=0"`
}

// ItemResponse salida de un artículo de inventario.
type ItemResponse struct {
	ID        string          `json:"id"`
	StoreID   string          `json:"store_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int64           `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ItemListResponse inventario de una tienda.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// DeleteItemResponse reporta si el artículo existía; borrar un artículo
// ausente es idempotente, no un error.
type DeleteItemResponse struct {
	Success bool `json:"success"`
	Deleted bool `json:"deleted"`
}
