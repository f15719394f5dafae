package dto

import "time"

// AdjustInventoryRequest movimiento sobre el inventario de un material.
// Type: "entrada" suma, "salida" descuenta validando existencia, "ajuste" fija el valor absoluto.
type AdjustInventoryRequest struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	Location string `json:"location,omitempty"` // vacío = no cambiar ubicación
}

// InventoryRecordResponse estado actual del inventario de un material.
type InventoryRecordResponse struct {
	MaterialID   string    `json:"material_id"`
	MaterialName string    `json:"material_name,omitempty"`
	Quantity     int       `json:"quantity"`
	Location     string    `json:"location,omitempty"`
	MinStock     int       `json:"min_stock"`
	LowStock     bool      `json:"low_stock"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LowStockItemResponse fila del reporte de reposición.
type LowStockItemResponse struct {
	MaterialID   string    `json:"material_id"`
	MaterialName string    `json:"material_name"`
	Category     string    `json:"category"`
	Quantity     int       `json:"quantity"`
	MinStock     int       `json:"min_stock"`
	Deficit      int       `json:"deficit"` // min_stock - quantity, mínimo 0
	Location     string    `json:"location,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}
