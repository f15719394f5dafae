package entity

import "github.com/shopspring/decimal"

// SaleLine representa un ítem facturable dentro de una venta.
// MaterialID y PlanID son referencias informativas (qué material o plano motivó
// el servicio); nunca disparan movimientos de inventario.
type SaleLine struct {
	ID          string
	SaleID      string
	PlanID      string // opcional, "" si no aplica
	MaterialID  string // opcional, "" si no aplica
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal // descuento por línea
	LineNo      int             // orden de inserción dentro de la venta
}
