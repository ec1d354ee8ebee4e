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

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL (usable con pool o tx).
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador de persistencia para carritos. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// EnsureCart crea el carrito si no existe. ON CONFLICT DO NOTHING deja la
// idempotencia en manos del constraint único: dos primeras reservas simultáneas
// del mismo usuario no producen filas duplicadas.
func (r *CartRepo) EnsureCart(username string) error {
	query := `
		INSERT INTO carts (username, created_at)
		VALUES ($1, now())
		ON CONFLICT (username) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, username)
	if err != nil {
		return fmt.Errorf("ensure cart: %w", err)
	}
	return nil
}

// GetItem devuelve la reserva (username, sku) o nil si no existe.
func (r *CartRepo) GetItem(username string, sku int64) (*entity.CartItem, error) {
	query := `
		SELECT cart_username, product_sku, quantity, created_at, updated_at
		FROM cart_items WHERE cart_username = $1 AND product_sku = $2`
	var item entity.CartItem
	err := r.q.QueryRow(context.Background(), query, username, sku).Scan(
		&item.CartUsername, &item.ProductSKU, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &item, nil
}

// CreateItem inserta una reserva nueva. El constraint único sobre
// (cart_username, product_sku) convierte los duplicados en ErrDuplicateReservation.
func (r *CartRepo) CreateItem(item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (cart_username, product_sku, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.CartUsername, item.ProductSKU, item.Quantity, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReservation
		}
		if isIntegrityViolation(err) {
			return domain.ErrConstraintViolation
		}
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// UpdateItemQuantity fija la cantidad de la reserva y devuelve la fila actualizada.
func (r *CartRepo) UpdateItemQuantity(username string, sku int64, quantity int64) (*entity.CartItem, error) {
	query := `
		UPDATE cart_items SET quantity = $3, updated_at = now()
		WHERE cart_username = $1 AND product_sku = $2
		RETURNING cart_username, product_sku, quantity, created_at, updated_at`
	var item entity.CartItem
	err := r.q.QueryRow(context.Background(), query, username, sku, quantity).Scan(
		&item.CartUsername, &item.ProductSKU, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCartItemNotFound
		}
		if isIntegrityViolation(err) {
			return nil, domain.ErrConstraintViolation
		}
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	return &item, nil
}

// DeleteItem elimina la reserva y devuelve su estado previo, o nil si no existía.
func (r *CartRepo) DeleteItem(username string, sku int64) (*entity.CartItem, error) {
	query := `
		DELETE FROM cart_items
		WHERE cart_username = $1 AND product_sku = $2
		RETURNING cart_username, product_sku, quantity, created_at, updated_at`
	var item entity.CartItem
	err := r.q.QueryRow(context.Background(), query, username, sku).Scan(
		&item.CartUsername, &item.ProductSKU, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete cart item: %w", err)
	}
	return &item, nil
}

// ListProductsByUsername devuelve los productos referenciados por las reservas del usuario.
func (r *CartRepo) ListProductsByUsername(username string) ([]*entity.Product, error) {
	query := `
		SELECT p.sku, p.price, p.quantity, p.expiration_date, p.created_at, p.updated_at
		FROM cart_items ci
		JOIN products p ON p.sku = ci.product_sku
		WHERE ci.cart_username = $1
		ORDER BY ci.created_at`
	rows, err := r.q.Query(context.Background(), query, username)
	if err != nil {
		return nil, fmt.Errorf("list cart products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.SKU, &p.Price, &p.Quantity, &p.ExpirationDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cart product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
