package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Christopheryu29/store-management-api/internal/application/dto"
	"github.com/Christopheryu29/store-management-api/internal/application/inventory"
	"github.com/Christopheryu29/store-management-api/internal/application/pos"
	"github.com/Christopheryu29/store-management-api/internal/domain"
	"github.com/Christopheryu29/store-management-api/internal/observability/metrics"
)

// POSHandler maneja el flujo de punto de venta: login por credenciales
// de tienda, sesión de caja y cobro de artículos.
type POSHandler struct {
	posUC      *pos.UseCase
	checkoutUC *inventory.CheckoutUseCase
}

func NewPOSHandler(posUC *pos.UseCase, checkoutUC *inventory.CheckoutUseCase) *POSHandler {
	return &POSHandler{posUC: posUC, checkoutUC: checkoutUC}
}

// Login godoc
// @Summary      Abrir sesión de caja con credenciales de la tienda
// @Tags         pos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StoreLoginRequest  true  "name, password"
// @Success      200   {object}  dto.StoreLoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/pos/login [post]
func (h *POSHandler) Login(c *fiber.Ctx) error {
	var in dto.StoreLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y password son requeridos"})
	}
	out, err := h.posUC.Login(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			metrics.ObserveStoreLogin("invalid")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales de tienda inválidas"})
		}
		metrics.ObserveStoreLogin("error")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.ObserveStoreLogin("ok")
	return c.JSON(out)
}

// CurrentStore godoc
// @Summary      Tienda de la sesión de caja activa
// @Tags         pos
// @Produce      json
// @Param        X-Store-Session  header  string  true  "token de sesión"
// @Success      200  {object}  dto.StoreResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/pos/store [get]
func (h *POSHandler) CurrentStore(c *fiber.Ctx) error {
	out, err := h.posUC.CurrentStore(c.Context(), GetSessionToken(c))
	if err != nil {
		if err == domain.ErrSessionExpired {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión de caja expiró"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Cobrar un artículo y descontar stock
// @Tags         pos
// @Accept       json
// @Produce      json
// @Param        X-Store-Session  header  string               true  "token de sesión"
// @Param        body             body    dto.CheckoutRequest  true  "itemId, quantity, onCredit"
// @Success      200  {object}  dto.CheckoutResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pos/checkout [post]
func (h *POSHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.checkoutUC.Checkout(c.Context(), GetStoreID(c), "", in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad inválida"})
		case domain.ErrItemNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "artículo no encontrado"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar la sesión de caja
// @Tags         pos
// @Produce      json
// @Param        X-Store-Session  header  string  true  "token de sesión"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/pos/logout [post]
func (h *POSHandler) Logout(c *fiber.Ctx) error {
	if err := h.posUC.Logout(c.Context(), GetSessionToken(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
