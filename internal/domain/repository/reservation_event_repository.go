package repository

import "github.com/jhoicas/carrito-api/internal/domain/entity"

// ReservationEventRepository define el puerto para el rastro de auditoría de reservas.
type ReservationEventRepository interface {
	Create(event *entity.ReservationEvent) error
	ListBySKU(sku int64, limit int) ([]*entity.ReservationEvent, error)
}
