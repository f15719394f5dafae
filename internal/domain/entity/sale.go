package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. completed -> cancelled es la única transición; cancelled es terminal.
const (
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
)

// Métodos de pago aceptados.
const (
	PaymentCash     = "efectivo"
	PaymentCard     = "tarjeta"
	PaymentTransfer = "transferencia"
)

// Sale representa una venta de servicios del taller (impresiones, ploteos, renderizados).
// Es dueña de sus líneas (composición). Al cancelar solo cambia Status: los
// montos quedan congelados y no hay reversa de inventario, las líneas son
// servicios y no consumen stock.
type Sale struct {
	ID            string
	ClientID      string
	OperatorID    string // usuario que registró la venta
	Date          time.Time
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	Status        string // completed, cancelled
	PaymentMethod string
	Notes         string
}

// IsCancelled indica si la venta ya está en su estado terminal.
func (s *Sale) IsCancelled() bool {
	return s.Status == SaleStatusCancelled
}
