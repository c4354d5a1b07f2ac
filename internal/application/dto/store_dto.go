package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStoreRequest entrada para crear una tienda. La password es la
// credencial compartida con la que los cajeros abren sesión en el punto de venta.
type CreateStoreRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Password string `json:"password" validate:"required,min=4"`
}

// StoreResponse salida de una tienda (nunca incluye la password ni su hash).
type StoreResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	TotalSales decimal.Decimal `json:"total_sales"`
	Debt       decimal.Decimal `json:"debt"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// StoreListResponse lista de tiendas (propias o asignadas).
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
}
