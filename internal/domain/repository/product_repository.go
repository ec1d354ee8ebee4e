package repository

import "github.com/jhoicas/carrito-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven nil (sin error) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetBySKU(sku int64) (*entity.Product, error)
	// GetBySKUForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetBySKUForUpdate(sku int64) (*entity.Product, error)
	// AdjustStock aplica delta al stock con guarda condicional quantity + delta >= 0.
	// Devuelve domain.ErrInsufficientStock si la guarda no se cumple (0 filas afectadas).
	AdjustStock(sku int64, delta int64) error
	List(limit, offset int) ([]*entity.Product, error)
}
