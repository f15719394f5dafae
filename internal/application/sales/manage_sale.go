package sales

import (
	"context"
	"time"

	"github.com/asplot/plotshop-api/internal/application/dto"
	"github.com/asplot/plotshop-api/internal/domain"
	"github.com/asplot/plotshop-api/internal/domain/entity"
	"github.com/asplot/plotshop-api/internal/domain/repository"
	domsales "github.com/asplot/plotshop-api/internal/domain/sales"
)

// ManageSaleUseCase cubre consulta, cancelación y corrección de ventas existentes.
type ManageSaleUseCase struct {
	txRunner   TxRunner
	saleRepo   repository.SaleRepository
	clientRepo repository.ClientRepository
}

// NewManageSaleUseCase construye el caso de uso.
func NewManageSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
) *ManageSaleUseCase {
	return &ManageSaleUseCase{txRunner: txRunner, saleRepo: saleRepo, clientRepo: clientRepo}
}

// Get devuelve la venta con sus líneas en orden de inserción.
func (uc *ManageSaleUseCase) Get(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.saleRepo.GetLinesBySaleID(id)
	if err != nil {
		return nil, err
	}
	resp := toSaleResponse(sale, lines)
	if client, err := uc.clientRepo.GetByID(sale.ClientID); err == nil && client != nil {
		resp.ClientName = client.FullName()
	}
	return resp, nil
}

// List devuelve las ventas (sin líneas) filtradas por estado y fecha.
func (uc *ManageSaleUseCase) List(ctx context.Context, filter dto.SaleListFilter) ([]dto.SaleResponse, error) {
	filter.Normalize()
	var since time.Time
	if filter.Since != "" {
		t, err := time.Parse("2006-01-02", filter.Since)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		since = t
	}
	sales, err := uc.saleRepo.List(filter.Status, since, filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s, nil))
	}
	return out, nil
}

// Cancel marca la venta como cancelada. La cancelación es terminal: cancelar dos
// veces retorna ErrAlreadyCancelled. Los montos quedan congelados y no se
// revierte inventario, las líneas son servicios que no consumen stock.
func (uc *ManageSaleUseCase) Cancel(ctx context.Context, id string) (*dto.SaleResponse, error) {
	var cancelled *entity.Sale
	err := uc.txRunner.RunSale(ctx, func(saleRepo repository.SaleRepository) error {
		sale, err := saleRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if sale.IsCancelled() {
			return domain.ErrAlreadyCancelled
		}
		if err := saleRepo.UpdateStatus(id, entity.SaleStatusCancelled); err != nil {
			return err
		}
		sale.Status = entity.SaleStatusCancelled
		cancelled = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(cancelled, nil), nil
}

// RemoveLine elimina una línea de una venta completada y recalcula subtotal y
// total a partir de las líneas restantes, conservando impuesto y descuento de
// cabecera. No se permite dejar la venta sin líneas ni corregir una cancelada.
func (uc *ManageSaleUseCase) RemoveLine(ctx context.Context, saleID, lineID string) (*dto.SaleResponse, error) {
	var (
		updated *entity.Sale
		lines   []*entity.SaleLine
	)
	err := uc.txRunner.RunSale(ctx, func(saleRepo repository.SaleRepository) error {
		sale, err := saleRepo.GetForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if sale.IsCancelled() {
			return domain.ErrConflict
		}

		current, err := saleRepo.GetLinesBySaleID(saleID)
		if err != nil {
			return err
		}
		found := false
		remaining := make([]*entity.SaleLine, 0, len(current))
		for _, line := range current {
			if line.ID == lineID {
				found = true
				continue
			}
			remaining = append(remaining, line)
		}
		if !found {
			return domain.ErrNotFound
		}
		if len(remaining) == 0 {
			return domain.ErrConflict
		}

		if err := saleRepo.DeleteLine(saleID, lineID); err != nil {
			return err
		}
		subtotal, total := domsales.ComputeTotals(remaining, sale.Tax, sale.Discount)
		if err := saleRepo.UpdateTotals(saleID, subtotal, total); err != nil {
			return err
		}
		sale.Subtotal = subtotal
		sale.Total = total
		updated = sale
		lines = remaining
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(updated, lines), nil
}
