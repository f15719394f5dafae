package sales

import (
	"context"

	"github.com/asplot/plotshop-api/internal/application/dto"
	"github.com/asplot/plotshop-api/internal/domain"
)

// ShopInfo datos del taller que aparecen en el encabezado del recibo.
type ShopInfo struct {
	Name    string
	Address string
	Phone   string
}

// ReceiptGenerator puerto para renderizar el recibo de una venta.
type ReceiptGenerator interface {
	GenerateSaleReceipt(ctx context.Context, sale *dto.SaleResponse, shop ShopInfo) ([]byte, error)
}

// ReceiptUseCase produce el recibo imprimible de una venta.
type ReceiptUseCase struct {
	manage    *ManageSaleUseCase
	generator ReceiptGenerator
	shop      ShopInfo
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(manage *ManageSaleUseCase, generator ReceiptGenerator, shop ShopInfo) *ReceiptUseCase {
	return &ReceiptUseCase{manage: manage, generator: generator, shop: shop}
}

// ReceiptPDF carga la venta con sus líneas y genera el PDF del recibo.
// Una venta cancelada también se puede imprimir; el recibo indica el estado.
func (uc *ReceiptUseCase) ReceiptPDF(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.manage.Get(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateSaleReceipt(ctx, sale, uc.shop)
}
