package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/domain/repository"
)

var _ repository.ReservationEventRepository = (*ReservationEventRepo)(nil)

// ReservationEventRepo implementación del rastro de auditoría sobre PostgreSQL (usable con pool o tx).
type ReservationEventRepo struct {
	q Querier
}

// NewReservationEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReservationEventRepository(q Querier) *ReservationEventRepo {
	return &ReservationEventRepo{q: q}
}

// Create guarda un evento de reserva. Se invoca dentro de la misma transacción
// que muta stock y carrito.
func (r *ReservationEventRepo) Create(event *entity.ReservationEvent) error {
	query := `
		INSERT INTO reservation_events (id, cart_username, product_sku, type, stock_delta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.CartUsername, event.ProductSKU, event.Type, event.StockDelta, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation event: %w", err)
	}
	return nil
}

// ListBySKU devuelve los eventos más recientes de un producto.
func (r *ReservationEventRepo) ListBySKU(sku int64, limit int) ([]*entity.ReservationEvent, error) {
	query := `
		SELECT id, cart_username, product_sku, type, stock_delta, created_at
		FROM reservation_events WHERE product_sku = $1
		ORDER BY created_at DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, sku, limit)
	if err != nil {
		return nil, fmt.Errorf("list reservation events: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReservationEvent
	for rows.Next() {
		var e entity.ReservationEvent
		if err := rows.Scan(&e.ID, &e.CartUsername, &e.ProductSKU, &e.Type, &e.StockDelta, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reservation event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
