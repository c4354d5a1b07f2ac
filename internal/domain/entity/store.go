package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Store representa una tienda. La contraseña compartida (login de cajeros vía
// punto de venta) se guarda como hash bcrypt, nunca en texto plano.
// TotalSales y Debt son acumulados que se actualizan en la misma transacción
// del checkout que los origina.
type Store struct {
	ID           string
	Name         string
	PasswordHash string
	TotalSales   decimal.Decimal
	Debt         decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
