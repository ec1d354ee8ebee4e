package dto

import (
	"time"

	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
)

// AddProductRequest entrada para agregar o actualizar un producto en el carrito.
type AddProductRequest struct {
	SKU      int64 `json:"sku" validate:"required,min=10000000,max=99999999"`
	Quantity int64 `json:"quantity" validate:"required,min=1"`
}

// Validate aplica las reglas de la API: sku de 8 dígitos y cantidad positiva.
func (r AddProductRequest) Validate() error {
	if !entity.ValidSKU(r.SKU) || r.Quantity < 1 {
		return domain.ErrInvalidInput
	}
	return nil
}

// RemoveProductRequest entrada para quitar un producto del carrito.
type RemoveProductRequest struct {
	SKU int64 `json:"sku" validate:"required,min=10000000,max=99999999"`
}

// Validate aplica las reglas de la API: sku de 8 dígitos.
func (r RemoveProductRequest) Validate() error {
	if !entity.ValidSKU(r.SKU) {
		return domain.ErrInvalidInput
	}
	return nil
}

// CartItemResponse salida de una reserva del carrito.
type CartItemResponse struct {
	Username  string    `json:"username"`
	SKU       int64     `json:"sku"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCartItemResponse convierte la entidad a su representación HTTP.
func ToCartItemResponse(item *entity.CartItem) CartItemResponse {
	return CartItemResponse{
		Username:  item.CartUsername,
		SKU:       item.ProductSKU,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
