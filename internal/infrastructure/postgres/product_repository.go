package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto con su stock inicial.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (sku, price, quantity, expiration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		product.SKU, product.Price, product.Quantity, product.ExpirationDate,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) || isIntegrityViolation(err) {
			return domain.ErrConstraintViolation
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetBySKU obtiene un producto por SKU. Devuelve nil si no existe.
func (r *ProductRepo) GetBySKU(sku int64) (*entity.Product, error) {
	return r.get(sku, false)
}

// GetBySKUForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// La verificación de suficiencia de stock y el débito posterior se evalúan
// contra este mismo snapshot.
func (r *ProductRepo) GetBySKUForUpdate(sku int64) (*entity.Product, error) {
	return r.get(sku, true)
}

func (r *ProductRepo) get(sku int64, forUpdate bool) (*entity.Product, error) {
	query := `
		SELECT sku, price, quantity, expiration_date, created_at, updated_at
		FROM products WHERE sku = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, sku).Scan(
		&p.SKU, &p.Price, &p.Quantity, &p.ExpirationDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// AdjustStock aplica delta al stock con guarda condicional: la fila solo se
// actualiza si quantity + delta >= 0. Cero filas afectadas significa que la
// guarda falló (o el producto no existe) y se reporta como stock insuficiente.
func (r *ProductRepo) AdjustStock(sku int64, delta int64) error {
	query := `
		UPDATE products
		SET quantity = quantity + $2, updated_at = now()
		WHERE sku = $1 AND quantity + $2 >= 0`
	cmd, err := r.q.Exec(context.Background(), query, sku, delta)
	if err != nil {
		if isIntegrityViolation(err) {
			return domain.ErrConstraintViolation
		}
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT sku, price, quantity, expiration_date, created_at, updated_at
		FROM products ORDER BY sku LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.SKU, &p.Price, &p.Quantity, &p.ExpirationDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
