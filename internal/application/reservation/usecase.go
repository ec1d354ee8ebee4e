package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/domain/repository"
)

// CartUseCase es el motor de reservas: orquesta las tres operaciones de negocio
// (AddItem, UpdateItem, DeleteItem) como transacciones atómicas que ajustan el
// stock del producto en paralelo con la reserva del carrito. La base de datos es
// el único punto de sincronización: el motor no mantiene estado mutable propio
// ni locks en proceso.
//
// Invariante de conservación: tras cada commit, para cada producto,
// stock disponible + suma de reservas = stock emitido inicialmente.
type CartUseCase struct {
	txRunner TxRunner
	cartRepo repository.CartRepository // atado al pool, para lecturas fuera de tx
	cache    ContentsCache             // opcional (nil = sin cache)
}

// NewCartUseCase construye el caso de uso. cache puede ser nil.
func NewCartUseCase(txRunner TxRunner, cartRepo repository.CartRepository, cache ContentsCache) *CartUseCase {
	return &CartUseCase{txRunner: txRunner, cartRepo: cartRepo, cache: cache}
}

// AddItem agrega un producto al carrito del usuario y descuenta el stock, todo en
// una sola transacción:
//
//  1. Bloquea la fila del producto (SELECT FOR UPDATE) y verifica existencia y
//     stock suficiente contra ese mismo snapshot.
//  2. Asegura el carrito del usuario (get-or-create idempotente).
//  3. Crea la reserva; un duplicado (username, sku) aborta con ErrDuplicateReservation.
//  4. Debita el stock con guarda condicional y registra el evento de auditoría.
//
// Cualquier fallo descarta la transacción completa, sin efectos parciales.
func (uc *CartUseCase) AddItem(ctx context.Context, username string, sku int64, quantity int64) (*entity.CartItem, error) {
	if username == "" || !entity.ValidSKU(sku) || quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	var item *entity.CartItem
	err := uc.txRunner.Run(ctx, func(
		cartRepo repository.CartRepository,
		productRepo repository.ProductRepository,
		eventRepo repository.ReservationEventRepository,
	) error {
		product, err := productRepo.GetBySKUForUpdate(sku)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if product.Quantity < quantity {
			return domain.ErrInsufficientStock
		}

		if err := cartRepo.EnsureCart(username); err != nil {
			return err
		}

		now := time.Now()
		item = &entity.CartItem{
			CartUsername: username,
			ProductSKU:   sku,
			Quantity:     quantity,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := cartRepo.CreateItem(item); err != nil {
			return err
		}
		if err := productRepo.AdjustStock(sku, -quantity); err != nil {
			return err
		}
		return eventRepo.Create(&entity.ReservationEvent{
			ID:           uuid.New().String(),
			CartUsername: username,
			ProductSKU:   sku,
			Type:         entity.ReservationEventADD,
			StockDelta:   -quantity,
			CreatedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateContents(ctx, username)
	return item, nil
}

// UpdateItem fija la cantidad de una reserva existente y ajusta el stock por la
// diferencia. Reducir la cantidad siempre está permitido (devuelve stock);
// aumentarla exige stock disponible por el incremento, medido sobre la cantidad
// del producto antes del ajuste de esta misma transacción. delta == 0 es un no-op
// que cuenta como éxito.
func (uc *CartUseCase) UpdateItem(ctx context.Context, username string, sku int64, quantity int64) (*entity.CartItem, error) {
	if username == "" || !entity.ValidSKU(sku) || quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	var item *entity.CartItem
	err := uc.txRunner.Run(ctx, func(
		cartRepo repository.CartRepository,
		productRepo repository.ProductRepository,
		eventRepo repository.ReservationEventRepository,
	) error {
		product, err := productRepo.GetBySKUForUpdate(sku)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		current, err := cartRepo.GetItem(username, sku)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrCartItemNotFound
		}

		// delta > 0: el usuario reduce su reserva y devuelve stock.
		// delta < 0: el usuario pide más; solo si hay stock por |delta|.
		delta := current.Quantity - quantity
		if delta == 0 {
			item = current
			return nil
		}
		if delta < 0 && product.Quantity < -delta {
			return domain.ErrInsufficientStock
		}

		item, err = cartRepo.UpdateItemQuantity(username, sku, quantity)
		if err != nil {
			return err
		}
		if err := productRepo.AdjustStock(sku, delta); err != nil {
			return err
		}
		return eventRepo.Create(&entity.ReservationEvent{
			ID:           uuid.New().String(),
			CartUsername: username,
			ProductSKU:   sku,
			Type:         entity.ReservationEventUPDATE,
			StockDelta:   delta,
			CreatedAt:    time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateContents(ctx, username)
	return item, nil
}

// DeleteItem elimina la reserva (username, sku) y devuelve su cantidad al stock
// del producto. Devuelve el estado previo del ítem eliminado.
func (uc *CartUseCase) DeleteItem(ctx context.Context, username string, sku int64) (*entity.CartItem, error) {
	if username == "" || !entity.ValidSKU(sku) {
		return nil, domain.ErrInvalidInput
	}

	var item *entity.CartItem
	err := uc.txRunner.Run(ctx, func(
		cartRepo repository.CartRepository,
		productRepo repository.ProductRepository,
		eventRepo repository.ReservationEventRepository,
	) error {
		deleted, err := cartRepo.DeleteItem(username, sku)
		if err != nil {
			return err
		}
		if deleted == nil {
			return domain.ErrCartItemNotFound
		}
		item = deleted

		if err := productRepo.AdjustStock(sku, deleted.Quantity); err != nil {
			return err
		}
		return eventRepo.Create(&entity.ReservationEvent{
			ID:           uuid.New().String(),
			CartUsername: username,
			ProductSKU:   sku,
			Type:         entity.ReservationEventDELETE,
			StockDelta:   deleted.Quantity,
			CreatedAt:    time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateContents(ctx, username)
	return item, nil
}

// GetContents devuelve los productos referenciados por el carrito del usuario.
// Lectura sin transacción ni efectos; lista vacía para un usuario sin reservas.
// Pasa por el cache si está configurado; un fallo del cache degrada a la BD.
func (uc *CartUseCase) GetContents(ctx context.Context, username string) ([]*entity.Product, error) {
	if username == "" {
		return nil, domain.ErrInvalidInput
	}

	if uc.cache != nil {
		if products, ok, err := uc.cache.Get(ctx, username); err == nil && ok {
			return products, nil
		}
	}

	products, err := uc.cartRepo.ListProductsByUsername(username)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*entity.Product{}
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, username, products)
	}
	return products, nil
}

// invalidateContents descarta la entrada de cache del usuario tras un commit.
// Best-effort: el cache tiene TTL y la BD es la fuente de verdad.
func (uc *CartUseCase) invalidateContents(ctx context.Context, username string) {
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, username)
	}
}
