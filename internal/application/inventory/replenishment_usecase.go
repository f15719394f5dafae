package inventory

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/asplot/plotshop-api/internal/application/dto"
	"github.com/asplot/plotshop-api/internal/domain/repository"
)

// ReplenishmentUseCase genera el reporte de materiales con stock bajo.
// Un material está bajo cuando su existencia es menor o igual a su stock mínimo;
// la igualdad cuenta como stock bajo. Solo considera materiales activos.
type ReplenishmentUseCase struct {
	invRepo  repository.InventoryRepository
	collator *collate.Collator
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(invRepo repository.InventoryRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{
		invRepo: invRepo,
		// Orden alfabético en español (ñ, tildes) para el listado impreso
		collator: collate.New(language.Spanish),
	}
}

// ListLowStock devuelve los materiales activos bajo el umbral, ordenados por nombre.
func (uc *ReplenishmentUseCase) ListLowStock(ctx context.Context) ([]dto.LowStockItemResponse, error) {
	items, err := uc.invRepo.ListLowStock()
	if err != nil {
		return nil, err
	}

	out := make([]dto.LowStockItemResponse, 0, len(items))
	for _, it := range items {
		deficit := it.MinStock - it.Quantity
		if deficit < 0 {
			deficit = 0
		}
		out = append(out, dto.LowStockItemResponse{
			MaterialID:   it.MaterialID,
			MaterialName: it.MaterialName,
			Category:     it.Category,
			Quantity:     it.Quantity,
			MinStock:     it.MinStock,
			Deficit:      deficit,
			Location:     it.Location,
			UpdatedAt:    it.UpdatedAt,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return uc.collator.CompareString(out[i].MaterialName, out[j].MaterialName) < 0
	})
	return out, nil
}
