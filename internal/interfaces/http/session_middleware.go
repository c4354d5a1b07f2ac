package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/Christopheryu29/store-management-api/internal/application/dto"
)

// Header y Locals key de la sesión de tienda del punto de venta.
const (
	HeaderStoreSession = "X-Store-Session"
	LocalStoreID       = "store_id"
	LocalSessionToken  = "store_session_token"
)

// sessionResolver es el contrato mínimo que necesita el middleware para
// resolver sesiones de tienda. Lo implementa *pos.UseCase; el uso de interfaz
// evita el import circular.
type sessionResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// StoreSessionMiddleware valida el token de sesión de tienda del header
// X-Store-Session y deja el store id en c.Locals. Reemplaza el estado
// ambiental de "tienda actual" que antes vivía en el cliente.
func StoreSessionMiddleware(resolver sessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(HeaderStoreSession)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_SESSION", Message: "header " + HeaderStoreSession + " requerido"})
		}
		storeID, err := resolver.Resolve(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "sesión de tienda inválida o expirada"})
		}
		c.Locals(LocalStoreID, storeID)
		c.Locals(LocalSessionToken, token)
		return c.Next()
	}
}

// GetStoreID devuelve el store id de la sesión de tienda (después del middleware).
func GetStoreID(c *fiber.Ctx) string {
	v := c.Locals(LocalStoreID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetSessionToken devuelve el token de la sesión de tienda (después del middleware).
func GetSessionToken(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionToken)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
