package dto

import "github.com/shopspring/decimal"

// StoreLoginRequest credenciales compartidas de la tienda (flujo de cajero).
type StoreLoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// StoreLoginResponse sesión de tienda establecida: token opaco con TTL que
// reemplaza el estado ambiental de "tienda actual" del cliente.
type StoreLoginResponse struct {
	SessionToken string        `json:"session_token"`
	Store        StoreResponse `json:"store"`
}

// CheckoutRequest venta de un artículo: descuenta stock y acumula el monto.
// OnCredit registra la venta como deuda (fiado) en lugar de venta pagada.
type CheckoutRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,min=1"`
	OnCredit bool   `json:"on_credit"`
}

// CheckoutResponse resultado de la venta.
type CheckoutResponse struct {
	Success        bool            `json:"success"`
	ItemID         string          `json:"item_id"`
	RemainingStock int64           `json:"remaining_stock"`
	Total          decimal.Decimal `json:"total"`
	SaleID         string          `json:"sale_id"`
}
