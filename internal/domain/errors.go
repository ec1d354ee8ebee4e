package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrProductNotFound      = errors.New("producto no encontrado")
	ErrCartItemNotFound     = errors.New("ítem del carrito no encontrado")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrDuplicateReservation = errors.New("el producto ya está reservado en el carrito")
	ErrConstraintViolation  = errors.New("violación de integridad en el almacenamiento")
	ErrInvalidInput         = errors.New("entrada inválida")
)
