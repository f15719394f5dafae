package entity

import "time"

// InventoryRecord representa la existencia actual de un material (uno a uno con Material).
// Se crea junto con el material y solo muta a través de los tres ajustes
// (entrada, salida, conteo absoluto). La ubicación viaja en el mismo ajuste y
// comparte el mismo UpdatedAt que la cantidad.
type InventoryRecord struct {
	MaterialID string
	Quantity   int
	Location   string
	UpdatedAt  time.Time
}

// NeedsReplenishment indica si la existencia está en o por debajo del stock mínimo.
// La igualdad cuenta como stock bajo.
func (r *InventoryRecord) NeedsReplenishment(minStock int) bool {
	return r.Quantity <= minStock
}
