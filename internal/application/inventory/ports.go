package inventory

import (
	"context"

	"github.com/asplot/plotshop-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para los ajustes de inventario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		materialRepo repository.MaterialRepository,
	) error) error
}
