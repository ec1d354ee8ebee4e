package repository

import "github.com/jhoicas/carrito-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para Cart y CartItem.
// Usado dentro de transacciones para garantizar consistencia con el stock.
type CartRepository interface {
	// EnsureCart crea el carrito del usuario si no existe (upsert idempotente,
	// guardado por constraint único; no es error que ya exista).
	EnsureCart(username string) error
	// GetItem devuelve la reserva (username, sku) o nil si no existe.
	GetItem(username string, sku int64) (*entity.CartItem, error)
	// CreateItem inserta una reserva nueva. Devuelve domain.ErrDuplicateReservation
	// si ya existe una fila para (username, sku).
	CreateItem(item *entity.CartItem) error
	// UpdateItemQuantity fija la cantidad de una reserva existente y devuelve la fila actualizada.
	UpdateItemQuantity(username string, sku int64, quantity int64) (*entity.CartItem, error)
	// DeleteItem elimina la reserva y devuelve su estado previo, o nil si no existía.
	DeleteItem(username string, sku int64) (*entity.CartItem, error)
	// ListProductsByUsername devuelve los productos referenciados por el carrito del usuario.
	// Lista vacía (sin error) para un usuario sin reservas.
	ListProductsByUsername(username string) ([]*entity.Product, error)
}
