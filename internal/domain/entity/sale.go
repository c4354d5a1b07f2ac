package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es el registro contable de un checkout exitoso. ItemName se copia al
// momento de la venta: si el artículo se renombra o elimina después, el
// histórico no cambia.
type Sale struct {
	ID        string
	StoreID   string
	ItemID    string
	ItemName  string
	Quantity  int64
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	OnCredit  bool   // true: acumula en Debt de la tienda; false: en TotalSales
	SoldBy    string // user id del vendedor, o vacío si vendió una sesión de tienda
	CreatedAt time.Time
}
