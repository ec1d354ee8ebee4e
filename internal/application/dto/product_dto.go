package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto del catálogo.
// ExpirationDate en formato RFC 3339 o fecha simple (2006-01-02).
type CreateProductRequest struct {
	SKU            int64           `json:"sku" validate:"required,min=10000000,max=99999999"`
	Price          decimal.Decimal `json:"price" validate:"min=0"`
	Quantity       int64           `json:"quantity" validate:"required,min=1"`
	ExpirationDate string          `json:"expiration_date" validate:"required"`
}

// Validate aplica las reglas de la API y devuelve la fecha de expiración parseada.
func (r CreateProductRequest) Validate() (time.Time, error) {
	if !entity.ValidSKU(r.SKU) || r.Quantity < 1 || r.Price.IsNegative() {
		return time.Time{}, domain.ErrInvalidInput
	}
	if t, err := time.Parse(time.RFC3339, r.ExpirationDate); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", r.ExpirationDate)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	SKU            int64           `json:"sku"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int64           `json:"quantity"`
	ExpirationDate time.Time       `json:"expiration_date"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToProductResponse convierte la entidad a su representación HTTP.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		SKU:            p.SKU,
		Price:          p.Price,
		Quantity:       p.Quantity,
		ExpirationDate: p.ExpirationDate,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ReservationEventResponse salida de un evento de auditoría de reservas.
type ReservationEventResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	SKU        int64     `json:"sku"`
	Type       string    `json:"type"`
	StockDelta int64     `json:"stock_delta"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToReservationEventResponse convierte la entidad a su representación HTTP.
func ToReservationEventResponse(e *entity.ReservationEvent) ReservationEventResponse {
	return ReservationEventResponse{
		ID:         e.ID,
		Username:   e.CartUsername,
		SKU:        e.ProductSKU,
		Type:       e.Type,
		StockDelta: e.StockDelta,
		CreatedAt:  e.CreatedAt,
	}
}
