package entity

import "time"

// Tipos de evento de reserva.
const (
	ReservationEventADD    = "ADD"
	ReservationEventUPDATE = "UPDATE"
	ReservationEventDELETE = "DELETE"
)

// ReservationEvent es el rastro auditable de cada operación confirmada sobre un
// carrito. StockDelta es el ajuste aplicado al stock del producto: negativo cuando
// la operación consume stock, positivo cuando lo devuelve. La suma de deltas por
// producto más su stock actual reproduce el stock emitido inicialmente.
type ReservationEvent struct {
	ID           string // uuid
	CartUsername string
	ProductSKU   int64
	Type         string // ADD | UPDATE | DELETE
	StockDelta   int64
	CreatedAt    time.Time
}
