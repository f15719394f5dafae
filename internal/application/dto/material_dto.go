package dto

import "github.com/shopspring/decimal"

// CreateMaterialRequest alta de material del catálogo.
// InitialQuantity/InitialLocation crean el registro de inventario en la misma transacción.
type CreateMaterialRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`    // papel | tinta | herramienta | otro
	Subcategory     string          `json:"subcategory"` // A0..A4, color de tinta, etc.
	UnitPrice       decimal.Decimal `json:"unit_price"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	UnitMeasure     string          `json:"unit_measure"`
	MinStock        *int            `json:"min_stock,omitempty"` // nil -> 10
	InitialQuantity int             `json:"initial_quantity"`
	InitialLocation string          `json:"initial_location"`
}

// UpdateMaterialRequest actualización parcial de material (punteros nil = sin cambio).
type UpdateMaterialRequest struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Subcategory   *string          `json:"subcategory,omitempty"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	UnitMeasure   *string          `json:"unit_measure,omitempty"`
	MinStock      *int             `json:"min_stock,omitempty"`
}

// MaterialResponse representación pública de un material.
type MaterialResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	UnitMeasure   string          `json:"unit_measure"`
	MinStock      int             `json:"min_stock"`
	Active        bool            `json:"active"`
}

// MaterialListFilter filtros del listado de materiales.
type MaterialListFilter struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	PageRequest
}
