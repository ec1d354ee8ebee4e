package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carrito-api/internal/application/dto"
	"github.com/jhoicas/carrito-api/internal/application/reservation"
	"github.com/jhoicas/carrito-api/internal/domain"
)

// CartHandler maneja las peticiones HTTP del carrito de un usuario.
type CartHandler struct {
	uc *reservation.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *reservation.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// GetContents godoc
// @Summary      Contenido del carrito
// @Tags         cart
// @Produce      json
// @Param        username  path  string  true  "Usuario dueño del carrito"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/{username}/cart [get]
func (h *CartHandler) GetContents(c *fiber.Ctx) error {
	username := c.Params("username")
	products, err := h.uc.GetContents(c.Context(), username)
	if err != nil {
		return mapCartError(c, err)
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductResponse(p))
	}
	return c.JSON(out)
}

// AddProduct godoc
// @Summary      Agregar un producto al carrito
// @Description  Reserva stock del producto para el usuario. Crea el carrito si no existe.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        username  path  string                 true  "Usuario dueño del carrito"
// @Param        body      body  dto.AddProductRequest  true  "sku (8 dígitos) y quantity (>= 1)"
// @Success      201  {object}  dto.CartItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/{username}/cart [post]
func (h *CartHandler) AddProduct(c *fiber.Ctx) error {
	username := c.Params("username")
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku de 8 dígitos y quantity >= 1"})
	}
	item, err := h.uc.AddItem(c.Context(), username, in.SKU, in.Quantity)
	if err != nil {
		return mapCartError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCartItemResponse(item))
}

// UpdateProduct godoc
// @Summary      Actualizar la cantidad de un producto en el carrito
// @Description  Fija la nueva cantidad; la diferencia se devuelve o descuenta del stock.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        username  path  string                 true  "Usuario dueño del carrito"
// @Param        body      body  dto.AddProductRequest  true  "sku (8 dígitos) y quantity (>= 1)"
// @Success      200  {object}  dto.CartItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/{username}/cart [put]
func (h *CartHandler) UpdateProduct(c *fiber.Ctx) error {
	username := c.Params("username")
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku de 8 dígitos y quantity >= 1"})
	}
	item, err := h.uc.UpdateItem(c.Context(), username, in.SKU, in.Quantity)
	if err != nil {
		return mapCartError(c, err)
	}
	return c.JSON(dto.ToCartItemResponse(item))
}

// RemoveProduct godoc
// @Summary      Quitar un producto del carrito
// @Description  Elimina la reserva y devuelve su cantidad al stock del producto.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        username  path  string                    true  "Usuario dueño del carrito"
// @Param        body      body  dto.RemoveProductRequest  true  "sku (8 dígitos)"
// @Success      200  {object}  dto.CartItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/{username}/cart [delete]
func (h *CartHandler) RemoveProduct(c *fiber.Ctx) error {
	username := c.Params("username")
	var in dto.RemoveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku de 8 dígitos"})
	}
	item, err := h.uc.DeleteItem(c.Context(), username, in.SKU)
	if err != nil {
		return mapCartError(c, err)
	}
	return c.JSON(dto.ToCartItemResponse(item))
}

// mapCartError traduce errores de dominio a códigos HTTP.
func mapCartError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrProductNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
	case domain.ErrCartItemNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CART_ITEM_NOT_FOUND", Message: "ítem del carrito no encontrado"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case domain.ErrDuplicateReservation:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_RESERVATION", Message: "el producto ya está en el carrito"})
	case domain.ErrConstraintViolation:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONSTRAINT", Message: "conflicto de integridad"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
