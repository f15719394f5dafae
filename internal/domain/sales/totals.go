package sales

import (
	"github.com/shopspring/decimal"
	"github.com/asplot/plotshop-api/internal/domain/entity"
)

// LineSubtotal implementa la regla de subtotal por línea (servicio de dominio).
// Subtotal = Cantidad * PrecioUnitario - DescuentoLinea
func LineSubtotal(line *entity.SaleLine) decimal.Decimal {
	qty := decimal.NewFromInt(int64(line.Quantity))
	return qty.Mul(line.UnitPrice).Sub(line.Discount)
}

// ComputeTotals recalcula subtotal y total a partir de las líneas actuales.
// Subtotal = Σ subtotales de línea; Total = Subtotal + Impuesto - Descuento.
func ComputeTotals(lines []*entity.SaleLine, tax, discount decimal.Decimal) (subtotal, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(LineSubtotal(line))
	}
	total = subtotal.Add(tax).Sub(discount)
	return subtotal, total
}

// ValidLine indica si una línea está bien formada: descripción no vacía,
// cantidad positiva, precio y descuento no negativos. Las líneas que no
// cumplen se descartan en silencio al crear la venta (comportamiento
// heredado del flujo de captura del formulario).
func ValidLine(line *entity.SaleLine) bool {
	if line.Description == "" || line.Quantity <= 0 {
		return false
	}
	if line.UnitPrice.IsNegative() || line.Discount.IsNegative() {
		return false
	}
	return true
}
