package usecase

import (
	"time"

	"github.com/jhoicas/carrito-api/internal/application/dto"
	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/domain/repository"
)

// ProductUseCase casos de uso de catálogo. El stock solo se crea aquí; toda
// mutación posterior pasa por el motor de reservas.
type ProductUseCase struct {
	repo      repository.ProductRepository
	eventRepo repository.ReservationEventRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, eventRepo repository.ReservationEventRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, eventRepo: eventRepo}
}

// Create crea un nuevo producto con su stock emitido inicial.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	expiration, err := in.Validate()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		SKU:            in.SKU,
		Price:          in.Price,
		Quantity:       in.Quantity,
		ExpirationDate: expiration,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// List lista productos del catálogo con paginación.
func (uc *ProductUseCase) List(limit, offset int) ([]dto.ProductResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	products, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductResponse(p))
	}
	return out, nil
}

// ListEvents devuelve el rastro de auditoría de reservas de un producto.
func (uc *ProductUseCase) ListEvents(sku int64, limit int) ([]dto.ReservationEventResponse, error) {
	if !entity.ValidSKU(sku) {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	events, err := uc.eventRepo.ListBySKU(sku, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservationEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.ToReservationEventResponse(e))
	}
	return out, nil
}
