package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	_ "github.com/jhoicas/carrito-api/docs"
	"github.com/jhoicas/carrito-api/internal/application/reservation"
	"github.com/jhoicas/carrito-api/internal/application/usecase"
	"github.com/jhoicas/carrito-api/internal/infrastructure/postgres"
	"github.com/jhoicas/carrito-api/internal/infrastructure/rediscache"
	httpRouter "github.com/jhoicas/carrito-api/internal/interfaces/http"
	"github.com/jhoicas/carrito-api/pkg/config"
	"github.com/jhoicas/carrito-api/pkg/logger"
)

// @title           Carrito API
// @description     Carrito de compras con reservas de stock transaccionales.
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Cache de contenidos del carrito (opcional: REDIS_ADDR vacío lo deshabilita)
	var cache reservation.ContentsCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis no disponible, cache deshabilitado")
		} else {
			cache = rediscache.NewContentsCache(client)
			log.Info().Str("addr", cfg.Redis.Addr).Msg("cache de carritos habilitado")
		}
	}

	cartRepo := postgres.NewCartRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	eventRepo := postgres.NewReservationEventRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	cartUC := reservation.NewCartUseCase(txRunner, cartRepo, cache)
	productUC := usecase.NewProductUseCase(productRepo, eventRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Carrito API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CartUC:    cartUC,
		ProductUC: productUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
