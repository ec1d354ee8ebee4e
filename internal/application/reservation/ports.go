package reservation

import (
	"context"

	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el motor de reservas: si fn devuelve
// error la transacción completa se descarta, sin efectos parciales.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		cartRepo repository.CartRepository,
		productRepo repository.ProductRepository,
		eventRepo repository.ReservationEventRepository,
	) error) error
}

// ContentsCache cachea el contenido del carrito para GetContents. Es solo una
// aceleración de lectura: toda decisión de negocio ocurre dentro de la transacción
// SQL. Las mutaciones invalidan la entrada del usuario tras el commit.
type ContentsCache interface {
	Get(ctx context.Context, username string) ([]*entity.Product, bool, error)
	Set(ctx context.Context, username string, products []*entity.Product) error
	Invalidate(ctx context.Context, username string) error
}
