package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/domain/repository"
)

// Tests de integración contra un PostgreSQL real con el esquema de migrations/
// aplicado. Se omiten si TEST_DATABASE_URL no está definido.

const itTestSKU int64 = 99991234

func getTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido, se omiten tests de integración")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Skipf("PostgreSQL no disponible: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		t.Skipf("PostgreSQL no disponible: %v", err)
	}
	return pool
}

func cleanup(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()
	_, _ = pool.Exec(ctx, `DELETE FROM reservation_events WHERE cart_username LIKE 'it-test-%'`)
	_, _ = pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_username LIKE 'it-test-%'`)
	_, _ = pool.Exec(ctx, `DELETE FROM carts WHERE username LIKE 'it-test-%'`)
	_, _ = pool.Exec(ctx, `DELETE FROM products WHERE sku = $1`, itTestSKU)
}

func seedProduct(t *testing.T, pool *pgxpool.Pool, quantity int64) {
	t.Helper()
	now := time.Now()
	repo := NewProductRepository(pool)
	err := repo.Create(&entity.Product{
		SKU:            itTestSKU,
		Price:          decimal.NewFromInt(10),
		Quantity:       quantity,
		ExpirationDate: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func TestEnsureCart_Idempotente(t *testing.T) {
	pool := getTestPool(t)
	defer pool.Close()
	cleanup(t, pool)
	defer cleanup(t, pool)

	repo := NewCartRepository(pool)
	if err := repo.EnsureCart("it-test-ana"); err != nil {
		t.Fatalf("primer EnsureCart: %v", err)
	}
	if err := repo.EnsureCart("it-test-ana"); err != nil {
		t.Fatalf("segundo EnsureCart debe ser no-op: %v", err)
	}

	var count int
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM carts WHERE username = 'it-test-ana'`).Scan(&count)
	if err != nil || count != 1 {
		t.Fatalf("debe haber exactamente un carrito, hay %d (err=%v)", count, err)
	}
}

func TestAdjustStock_GuardaCondicional(t *testing.T) {
	pool := getTestPool(t)
	defer pool.Close()
	cleanup(t, pool)
	defer cleanup(t, pool)
	seedProduct(t, pool, 5)

	repo := NewProductRepository(pool)
	if err := repo.AdjustStock(itTestSKU, -5); err != nil {
		t.Fatalf("debitar dentro del stock: %v", err)
	}
	// Stock en 0: cualquier débito adicional debe fallar sin mutar la fila
	if err := repo.AdjustStock(itTestSKU, -1); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("esperaba ErrInsufficientStock, obtuve %v", err)
	}
	p, err := repo.GetBySKU(itTestSKU)
	if err != nil || p == nil || p.Quantity != 0 {
		t.Fatalf("el stock debe quedar en 0, producto=%+v err=%v", p, err)
	}
}

func TestTxRunner_RollbackSinEfectosParciales(t *testing.T) {
	pool := getTestPool(t)
	defer pool.Close()
	cleanup(t, pool)
	defer cleanup(t, pool)
	seedProduct(t, pool, 5)

	runner := NewTxRunner(pool)
	boom := errors.New("boom")
	err := runner.Run(context.Background(), func(
		cartRepo repository.CartRepository,
		productRepo repository.ProductRepository,
		eventRepo repository.ReservationEventRepository,
	) error {
		if err := cartRepo.EnsureCart("it-test-bruno"); err != nil {
			return err
		}
		if err := productRepo.AdjustStock(itTestSKU, -3); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("el error del callback debe propagarse, obtuve %v", err)
	}

	// Nada de lo anterior debe haberse publicado
	repo := NewProductRepository(pool)
	p, err := repo.GetBySKU(itTestSKU)
	if err != nil || p == nil || p.Quantity != 5 {
		t.Fatalf("el rollback debe restaurar el stock a 5, producto=%+v err=%v", p, err)
	}
	var count int
	_ = pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM carts WHERE username = 'it-test-bruno'`).Scan(&count)
	if count != 0 {
		t.Fatalf("el carrito no debe existir tras el rollback")
	}
}

func TestCreateItem_DuplicadoYDelete(t *testing.T) {
	pool := getTestPool(t)
	defer pool.Close()
	cleanup(t, pool)
	defer cleanup(t, pool)
	seedProduct(t, pool, 5)

	cartRepo := NewCartRepository(pool)
	if err := cartRepo.EnsureCart("it-test-carla"); err != nil {
		t.Fatalf("ensure cart: %v", err)
	}
	now := time.Now()
	item := &entity.CartItem{
		CartUsername: "it-test-carla", ProductSKU: itTestSKU, Quantity: 2,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := cartRepo.CreateItem(item); err != nil {
		t.Fatalf("crear reserva: %v", err)
	}
	if err := cartRepo.CreateItem(item); !errors.Is(err, domain.ErrDuplicateReservation) {
		t.Fatalf("esperaba ErrDuplicateReservation, obtuve %v", err)
	}

	deleted, err := cartRepo.DeleteItem("it-test-carla", itTestSKU)
	if err != nil || deleted == nil || deleted.Quantity != 2 {
		t.Fatalf("delete debe devolver el estado previo, item=%+v err=%v", deleted, err)
	}
	again, err := cartRepo.DeleteItem("it-test-carla", itTestSKU)
	if err != nil || again != nil {
		t.Fatalf("segundo delete debe devolver nil, item=%+v err=%v", again, err)
	}
}
