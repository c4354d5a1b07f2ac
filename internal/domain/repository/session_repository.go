package repository

import (
	"context"
	"time"
)

// StoreSessionRepository define el puerto para las sesiones de tienda del
// punto de venta: token opaco -> store id, con expiración.
type StoreSessionRepository interface {
	// Create emite un token nuevo asociado a la tienda, con el TTL indicado.
	Create(ctx context.Context, storeID string, ttl time.Duration) (string, error)
	// Get resuelve el token. ok=false si no existe o expiró.
	Get(ctx context.Context, token string) (storeID string, ok bool, err error)
	Delete(ctx context.Context, token string) error
}
