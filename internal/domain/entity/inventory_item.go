package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo del inventario de una tienda.
// Cada artículo es una fila direccionable por sí misma: el stock se muta con
// bloqueo de fila, no reescribiendo la lista completa del inventario.
// Stock nunca es negativo; el checkout falla antes de descontar de más.
type InventoryItem struct {
	ID        string
	StoreID   string
	Name      string // único dentro de la tienda
	Price     decimal.Decimal
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
