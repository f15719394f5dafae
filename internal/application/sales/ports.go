package sales

import (
	"context"

	"github.com/asplot/plotshop-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con el repositorio
// de ventas atado a esa tx. Garantiza que cabecera y líneas se persistan juntas.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error
}
