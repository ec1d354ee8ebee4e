package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carrito-api/internal/application/dto"
	"github.com/jhoicas/carrito-api/internal/application/usecase"
	"github.com/jhoicas/carrito-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP de catálogo (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         product
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "sku, price, quantity, expiration_date"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/product [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrConstraintViolation {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_SKU", Message: "el sku ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List godoc
// @Summary      Listar productos
// @Tags         product
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (def. 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/product [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	products, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(products)
}

// ListEvents godoc
// @Summary      Rastro de reservas de un producto
// @Description  Eventos ADD/UPDATE/DELETE con el ajuste de stock aplicado por cada uno.
// @Tags         product
// @Security     Bearer
// @Produce      json
// @Param        sku    path   int  true   "SKU de 8 dígitos"
// @Param        limit  query  int  false  "Máximo de eventos (def. 100)"
// @Success      200  {array}   dto.ReservationEventResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/product/{sku}/events [get]
func (h *ProductHandler) ListEvents(c *fiber.Ctx) error {
	sku, err := strconv.ParseInt(c.Params("sku"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku inválido"})
	}
	events, err := h.uc.ListEvents(sku, c.QueryInt("limit", 100))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku de 8 dígitos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(events)
}
