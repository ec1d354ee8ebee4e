package entity

import "time"

// Cart representa el carrito de un usuario. Solo tiene identidad (username);
// los ítems viven en CartItem. Se crea de forma perezosa en la primera reserva.
type Cart struct {
	Username  string
	CreatedAt time.Time
}

// CartItem es una reserva: stock reclamado por un usuario sobre un producto.
// Clave compuesta (CartUsername, ProductSKU); Quantity >= 1 mientras la fila exista
// (una reserva en cero se elimina vía Delete, no se conserva).
type CartItem struct {
	CartUsername string
	ProductSKU   int64
	Quantity     int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
