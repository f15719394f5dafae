package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest línea de una venta. PlanID/MaterialID son referencias opcionales;
// Description es el texto que queda en el recibo.
type SaleLineRequest struct {
	PlanID      string          `json:"plan_id,omitempty"`
	MaterialID  string          `json:"material_id,omitempty"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
}

// CreateSaleRequest alta de venta con sus líneas.
type CreateSaleRequest struct {
	ClientID      string            `json:"client_id"`
	PaymentMethod string            `json:"payment_method"` // efectivo | tarjeta | transferencia
	Tax           decimal.Decimal   `json:"tax"`
	Discount      decimal.Decimal   `json:"discount"`
	Notes         string            `json:"notes,omitempty"`
	Lines         []SaleLineRequest `json:"lines"`
}

// SaleLineResponse línea persistida de una venta.
type SaleLineResponse struct {
	ID          string          `json:"id"`
	PlanID      string          `json:"plan_id,omitempty"`
	MaterialID  string          `json:"material_id,omitempty"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	LineNo      int             `json:"line_no"`
}

// SaleResponse venta completa con totales y líneas.
type SaleResponse struct {
	ID            string             `json:"id"`
	ClientID      string             `json:"client_id"`
	ClientName    string             `json:"client_name,omitempty"`
	OperatorID    string             `json:"operator_id,omitempty"`
	Date          time.Time          `json:"date"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Tax           decimal.Decimal    `json:"tax"`
	Discount      decimal.Decimal    `json:"discount"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	Notes         string             `json:"notes,omitempty"`
	Lines         []SaleLineResponse `json:"lines,omitempty"`
	SkippedLines  int                `json:"skipped_lines,omitempty"` // líneas descartadas por inválidas al crear
}

// SaleListFilter filtros del listado de ventas.
type SaleListFilter struct {
	Status string `query:"status"`
	Since  string `query:"since"` // fecha ISO, opcional
	PageRequest
}
