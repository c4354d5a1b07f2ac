package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Christopheryu29/store-management-api/internal/application/dto"
	"github.com/Christopheryu29/store-management-api/internal/application/inventory"
	"github.com/Christopheryu29/store-management-api/internal/domain"
)

// InventoryHandler maneja el CRUD de artículos por tienda.
type InventoryHandler struct {
	uc *inventory.UseCase
}

func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

func inventoryErrorStatus(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STORE_NOT_FOUND", Message: "tienda no encontrada"})
	case domain.ErrItemNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "artículo no encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no es dueño de esta tienda"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NAME", Message: "ya existe un artículo con ese nombre"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de artículo inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// AddItem godoc
// @Summary      Agregar artículo al inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la tienda"
// @Param        body  body  dto.AddItemRequest  true  "name, price, stock"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/items [post]
func (h *InventoryHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddItem(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return inventoryErrorStatus(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem godoc
// @Summary      Actualizar artículo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string                 true  "ID de la tienda"
// @Param        itemId  path  string                 true  "ID del artículo"
// @Param        body    body  dto.UpdateItemRequest  true  "campos a actualizar"
// @Success      200     {object}  dto.ItemResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/items/{itemId} [put]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateItem(GetUserID(c), c.Params("id"), c.Params("itemId"), in)
	if err != nil {
		return inventoryErrorStatus(c, err)
	}
	return c.JSON(out)
}

// DeleteItem godoc
// @Summary      Eliminar artículo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID de la tienda"
// @Param        itemId  path  string  true  "ID del artículo"
// @Success      200     {object}  dto.DeleteItemResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/items/{itemId} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	out, err := h.uc.DeleteItem(GetUserID(c), c.Params("id"), c.Params("itemId"))
	if err != nil {
		return inventoryErrorStatus(c, err)
	}
	return c.JSON(out)
}

// ListItems godoc
// @Summary      Listar artículos de la tienda
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path   string  true   "ID de la tienda"
// @Param        q   query  string  false  "filtro por nombre (sin distinción de tildes)"
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/stores/{id}/items [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(c.Params("id"), c.Query("q"))
	if err != nil {
		return inventoryErrorStatus(c, err)
	}
	return c.JSON(out)
}
