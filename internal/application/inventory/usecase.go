package inventory

import (
	"context"
	"time"

	"github.com/asplot/plotshop-api/internal/application/dto"
	"github.com/asplot/plotshop-api/internal/domain"
	"github.com/asplot/plotshop-api/internal/domain/entity"
	"github.com/asplot/plotshop-api/internal/domain/repository"
)

// Tipos de ajuste de inventario.
const (
	AdjustTypeEntrada = "entrada" // suma a la existencia
	AdjustTypeSalida  = "salida"  // descuenta validando existencia suficiente
	AdjustTypeAjuste  = "ajuste"  // fija la existencia en el valor absoluto indicado
)

// LedgerUseCase aplica ajustes de inventario de forma transaccional con bloqueo
// de fila (SELECT FOR UPDATE) y Commit/Rollback.
type LedgerUseCase struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
	invRepo      repository.InventoryRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	materialRepo repository.MaterialRepository,
	invRepo repository.InventoryRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:     txRunner,
		materialRepo: materialRepo,
		invRepo:      invRepo,
	}
}

// AdjustInput entrada para un ajuste de inventario.
// Location vacía significa conservar la ubicación actual.
type AdjustInput struct {
	Type     string
	Quantity int
	Location string
}

// Adjust inicia una transacción, bloquea la fila de existencias del material y
// aplica el ajuste según tipo. Cantidad y ubicación comparten el mismo UpdatedAt.
// Si la salida excede la existencia actual retorna ErrInsufficientStock y no muta nada.
func (uc *LedgerUseCase) Adjust(ctx context.Context, materialID string, input AdjustInput) (*entity.InventoryRecord, error) {
	switch input.Type {
	case AdjustTypeEntrada, AdjustTypeSalida:
		if input.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	case AdjustTypeAjuste:
		// El conteo absoluto admite cero (material agotado) pero nunca negativo.
		if input.Quantity < 0 {
			return nil, domain.ErrInvalidQuantity
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var updated *entity.InventoryRecord

	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		materialRepo repository.MaterialRepository,
	) error {
		material, err := materialRepo.GetByID(materialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}

		// Bloquea la fila de existencias para evitar condiciones de carrera
		record, err := invRepo.GetForUpdate(materialID)
		if err != nil {
			return err
		}

		switch input.Type {
		case AdjustTypeEntrada:
			record.Quantity += input.Quantity
		case AdjustTypeSalida:
			if record.Quantity < input.Quantity {
				return domain.ErrInsufficientStock
			}
			record.Quantity -= input.Quantity
		case AdjustTypeAjuste:
			record.Quantity = input.Quantity
		}

		if input.Location != "" {
			record.Location = input.Location
		}
		record.UpdatedAt = now

		if err := invRepo.Upsert(record); err != nil {
			return err
		}
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Get devuelve el estado actual del inventario de un material con su bandera de stock bajo.
func (uc *LedgerUseCase) Get(ctx context.Context, materialID string) (*dto.InventoryRecordResponse, error) {
	material, err := uc.materialRepo.GetByID(materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	record, err := uc.invRepo.Get(materialID)
	if err != nil {
		return nil, err
	}
	return &dto.InventoryRecordResponse{
		MaterialID:   material.ID,
		MaterialName: material.Name,
		Quantity:     record.Quantity,
		Location:     record.Location,
		MinStock:     material.MinStock,
		LowStock:     record.NeedsReplenishment(material.MinStock),
		UpdatedAt:    record.UpdatedAt,
	}, nil
}

// List devuelve las existencias de los materiales activos, paginadas.
func (uc *LedgerUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.InventoryRecordResponse, error) {
	page.Normalize()
	items, err := uc.invRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryRecordResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InventoryRecordResponse{
			MaterialID:   it.MaterialID,
			MaterialName: it.MaterialName,
			Quantity:     it.Quantity,
			Location:     it.Location,
			MinStock:     it.MinStock,
			LowStock:     it.Quantity <= it.MinStock,
			UpdatedAt:    it.UpdatedAt,
		})
	}
	return out, nil
}
