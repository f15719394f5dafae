package repository

import (
	"time"

	"github.com/asplot/plotshop-api/internal/domain/entity"
)

// LowStockItem fila cruda de la consulta de stock bajo (existencia + datos del material).
type LowStockItem struct {
	MaterialID   string
	MaterialName string
	Category     string
	Quantity     int
	MinStock     int
	Location     string
	UpdatedAt    time.Time
}

// InventoryRepository define el puerto para consultar/actualizar existencias por material.
// Usado dentro de transacciones para garantizar consistencia.
type InventoryRepository interface {
	Get(materialID string) (*entity.InventoryRecord, error)
	Upsert(record *entity.InventoryRecord) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(materialID string) (*entity.InventoryRecord, error)
	// List devuelve todas las existencias de materiales activos.
	List(limit, offset int) ([]LowStockItem, error)
	// ListLowStock devuelve las existencias de materiales activos con
	// cantidad <= stock mínimo. El orden final por nombre lo aplica el caso de uso.
	ListLowStock() ([]LowStockItem, error)
}
