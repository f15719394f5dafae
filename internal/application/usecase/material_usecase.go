package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/asplot/plotshop-api/internal/application/dto"
	"github.com/asplot/plotshop-api/internal/application/inventory"
	"github.com/asplot/plotshop-api/internal/domain"
	"github.com/asplot/plotshop-api/internal/domain/entity"
	"github.com/asplot/plotshop-api/internal/domain/repository"
)

const defaultMinStock = 10

// MaterialUseCase casos de uso CRUD para el catálogo de materiales.
// El alta crea el material y su registro de inventario en la misma transacción.
type MaterialUseCase struct {
	txRunner inventory.TxRunner
	repo     repository.MaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(txRunner inventory.TxRunner, repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{txRunner: txRunner, repo: repo}
}

func validCategory(c string) bool {
	switch c {
	case entity.MaterialCategoryPaper, entity.MaterialCategoryInk,
		entity.MaterialCategoryTool, entity.MaterialCategoryOther:
		return true
	}
	return false
}

// Create crea el material y su inventario inicial de forma atómica.
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Name == "" || !validCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.IsNegative() || in.PurchasePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	minStock := defaultMinStock
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		minStock = *in.MinStock
	}

	now := time.Now()
	material := &entity.Material{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		Subcategory:   in.Subcategory,
		UnitPrice:     in.UnitPrice,
		PurchasePrice: in.PurchasePrice,
		UnitMeasure:   in.UnitMeasure,
		MinStock:      minStock,
		Active:        true,
	}
	record := &entity.InventoryRecord{
		MaterialID: material.ID,
		Quantity:   in.InitialQuantity,
		Location:   in.InitialLocation,
		UpdatedAt:  now,
	}

	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		materialRepo repository.MaterialRepository,
	) error {
		if err := materialRepo.Create(material); err != nil {
			return err
		}
		return invRepo.Upsert(record)
	})
	if err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// GetByID obtiene un material por ID.
func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	return toMaterialResponse(material), nil
}

// Update actualiza campos editables del material. La existencia no se toca aquí,
// se ajusta vía movimientos de inventario.
func (uc *MaterialUseCase) Update(ctx context.Context, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		material.Name = *in.Name
	}
	if in.Description != nil {
		material.Description = *in.Description
	}
	if in.Category != nil {
		if !validCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		material.Category = *in.Category
	}
	if in.Subcategory != nil {
		material.Subcategory = *in.Subcategory
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		material.UnitPrice = *in.UnitPrice
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		material.PurchasePrice = *in.PurchasePrice
	}
	if in.UnitMeasure != nil {
		material.UnitMeasure = *in.UnitMeasure
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		material.MinStock = *in.MinStock
	}
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// Deactivate retira el material del catálogo (soft delete). El historial de
// inventario y las ventas que lo referencian se conservan.
func (uc *MaterialUseCase) Deactivate(ctx context.Context, id string) error {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}

// List lista materiales activos con filtros y paginación.
func (uc *MaterialUseCase) List(ctx context.Context, filter dto.MaterialListFilter) ([]dto.MaterialResponse, error) {
	filter.Normalize()
	if filter.Category != "" && !validCategory(filter.Category) {
		return nil, domain.ErrInvalidInput
	}
	materials, err := uc.repo.ListActive(filter.Category, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, *toMaterialResponse(m))
	}
	return out, nil
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Category:      m.Category,
		Subcategory:   m.Subcategory,
		UnitPrice:     m.UnitPrice,
		PurchasePrice: m.PurchasePrice,
		UnitMeasure:   m.UnitMeasure,
		MinStock:      m.MinStock,
		Active:        m.Active,
	}
}
