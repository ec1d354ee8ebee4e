package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/infrastructure/postgres"
	"github.com/jhoicas/carrito-api/pkg/config"
	"github.com/jhoicas/carrito-api/pkg/logger"
)

// Siembra el catálogo inicial. Tolerante a re-ejecución: los productos que ya
// existen se dejan como están.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewProductRepository(pool)
	now := time.Now()
	expiration := now.AddDate(1, 0, 0)

	products := []*entity.Product{
		{SKU: 40389481, Price: decimal.NewFromInt(10), Quantity: 10, ExpirationDate: expiration},
		{SKU: 87660171, Price: decimal.NewFromInt(30), Quantity: 2, ExpirationDate: expiration},
		{SKU: 35622461, Price: decimal.NewFromInt(10000), Quantity: 5, ExpirationDate: expiration},
		{SKU: 99767581, Price: decimal.NewFromFloat(9.99), Quantity: 6, ExpirationDate: expiration},
	}

	log.Info().Msg("sembrando productos")
	for _, p := range products {
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := repo.Create(p); err != nil {
			if err == domain.ErrConstraintViolation {
				log.Info().Int64("sku", p.SKU).Msg("ya existe, se omite")
				continue
			}
			log.Fatal().Err(err).Int64("sku", p.SKU).Msg("insertar producto")
		}
		log.Info().Int64("sku", p.SKU).Int64("quantity", p.Quantity).Msg("producto sembrado")
	}
	log.Info().Msg("siembra finalizada")
}
