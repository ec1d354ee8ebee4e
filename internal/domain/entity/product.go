package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Límites del SKU: identificador de 8 dígitos (ver validadores de la API).
const (
	SKUMin int64 = 10000000
	SKUMax int64 = 99999999
)

// Product representa un producto del catálogo con su stock disponible.
// Quantity es el stock libre: cada unidad reservada en un carrito se descuenta
// de aquí y vuelve cuando la reserva se reduce o elimina.
type Product struct {
	SKU            int64           // identificador único de 8 dígitos
	Price          decimal.Decimal // precio de venta, >= 0
	Quantity       int64           // stock disponible, nunca negativo
	ExpirationDate time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidSKU indica si el sku está dentro del rango de 8 dígitos.
func ValidSKU(sku int64) bool {
	return sku >= SKUMin && sku <= SKUMax
}
