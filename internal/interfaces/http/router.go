package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carrito-api/internal/application/reservation"
	"github.com/jhoicas/carrito-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CartUC    *reservation.CartUseCase
	ProductUC *usecase.ProductUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Catálogo (protegido, requiere Bearer Token)
	products := api.Group("/product", AuthMiddleware(deps.JWTSecret))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:sku/events", productHandler.ListEvents)

	// Carrito por usuario (público)
	cart := api.Group("/:username/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.GetContents)
	cart.Post("/", cartHandler.AddProduct)
	cart.Put("/", cartHandler.UpdateProduct)
	cart.Delete("/", cartHandler.RemoveProduct)
}
