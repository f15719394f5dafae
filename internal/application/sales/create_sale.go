package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/asplot/plotshop-api/internal/application/dto"
	"github.com/asplot/plotshop-api/internal/domain"
	"github.com/asplot/plotshop-api/internal/domain/entity"
	"github.com/asplot/plotshop-api/internal/domain/repository"
	domsales "github.com/asplot/plotshop-api/internal/domain/sales"
)

// CreateSaleUseCase registra una venta con sus líneas en una sola transacción.
//
// Las líneas mal formadas (sin descripción, cantidad no positiva, montos
// negativos) se descartan en silencio; si ninguna línea sobrevive el filtro la
// venta se rechaza completa. Los totales se derivan siempre de las líneas
// aceptadas, nunca de montos enviados por el cliente.
type CreateSaleUseCase struct {
	txRunner   TxRunner
	clientRepo repository.ClientRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner TxRunner, clientRepo repository.ClientRepository) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner, clientRepo: clientRepo}
}

// Create valida el cliente y las líneas, calcula totales y persiste cabecera y
// líneas atómicamente. La venta nace en estado completed.
func (uc *CreateSaleUseCase) Create(ctx context.Context, operatorID string, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if req.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(req.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	payment := req.PaymentMethod
	if payment == "" {
		payment = entity.PaymentCash
	}
	switch payment {
	case entity.PaymentCash, entity.PaymentCard, entity.PaymentTransfer:
	default:
		return nil, fmt.Errorf("método de pago %q: %w", payment, domain.ErrInvalidInput)
	}
	if req.Tax.IsNegative() || req.Discount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	saleID := uuid.New().String()

	// Filtrar líneas: lo que no pasa la validación se descarta sin abortar la venta
	var lines []*entity.SaleLine
	skipped := 0
	for _, lr := range req.Lines {
		line := &entity.SaleLine{
			ID:          uuid.New().String(),
			SaleID:      saleID,
			PlanID:      lr.PlanID,
			MaterialID:  lr.MaterialID,
			Description: lr.Description,
			Quantity:    lr.Quantity,
			UnitPrice:   lr.UnitPrice,
			Discount:    lr.Discount,
		}
		if !domsales.ValidLine(line) {
			skipped++
			continue
		}
		line.LineNo = len(lines) + 1
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("la venta no tiene líneas válidas: %w", domain.ErrInvalidInput)
	}

	subtotal, total := domsales.ComputeTotals(lines, req.Tax, req.Discount)

	sale := &entity.Sale{
		ID:            saleID,
		ClientID:      req.ClientID,
		OperatorID:    operatorID,
		Date:          now,
		Subtotal:      subtotal,
		Tax:           req.Tax,
		Discount:      req.Discount,
		Total:         total,
		Status:        entity.SaleStatusCompleted,
		PaymentMethod: payment,
		Notes:         req.Notes,
	}

	// Cabecera y líneas en la misma transacción: o queda todo o no queda nada
	err = uc.txRunner.RunSale(ctx, func(saleRepo repository.SaleRepository) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, line := range lines {
			if err := saleRepo.CreateLine(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toSaleResponse(sale, lines)
	resp.ClientName = client.FullName()
	resp.SkippedLines = skipped
	return resp, nil
}

func toSaleResponse(sale *entity.Sale, lines []*entity.SaleLine) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:            sale.ID,
		ClientID:      sale.ClientID,
		OperatorID:    sale.OperatorID,
		Date:          sale.Date,
		Subtotal:      sale.Subtotal,
		Tax:           sale.Tax,
		Discount:      sale.Discount,
		Total:         sale.Total,
		Status:        sale.Status,
		PaymentMethod: sale.PaymentMethod,
		Notes:         sale.Notes,
	}
	for _, line := range lines {
		out.Lines = append(out.Lines, dto.SaleLineResponse{
			ID:          line.ID,
			PlanID:      line.PlanID,
			MaterialID:  line.MaterialID,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Discount:    line.Discount,
			Subtotal:    domsales.LineSubtotal(line),
			LineNo:      line.LineNo,
		})
	}
	return out
}
