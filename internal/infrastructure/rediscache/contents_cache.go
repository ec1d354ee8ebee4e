package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/carrito-api/internal/application/reservation"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
)

const (
	contentsKeyPrefix = "cart:contents:"
	contentsTTL       = 30 * time.Second
)

var _ reservation.ContentsCache = (*ContentsCache)(nil)

// ContentsCache cachea en Redis el resultado de GetContents por usuario.
// TTL corto: el cache solo acelera lecturas, la BD sigue siendo la fuente de
// verdad y cada mutación del carrito invalida la entrada.
type ContentsCache struct {
	client *redis.Client
}

// NewContentsCache construye el adaptador sobre un cliente Redis.
func NewContentsCache(client *redis.Client) *ContentsCache {
	return &ContentsCache{client: client}
}

// Get devuelve el contenido cacheado del carrito; ok=false si no hay entrada.
func (c *ContentsCache) Get(ctx context.Context, username string) ([]*entity.Product, bool, error) {
	raw, err := c.client.Get(ctx, contentsKeyPrefix+username).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	var products []*entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return products, true, nil
}

// Set guarda el contenido del carrito con TTL.
func (c *ContentsCache) Set(ctx context.Context, username string, products []*entity.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, contentsKeyPrefix+username, raw, contentsTTL).Err()
}

// Invalidate descarta la entrada del usuario.
func (c *ContentsCache) Invalidate(ctx context.Context, username string) error {
	return c.client.Del(ctx, contentsKeyPrefix+username).Err()
}
