package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/asplot/plotshop-api/internal/domain/entity"
	"github.com/asplot/plotshop-api/internal/domain/sales"
)

// línea de ayuda para los tests.
func line(desc string, qty int, price, discount float64) *entity.SaleLine {
	return &entity.SaleLine{
		Description: desc,
		Quantity:    qty,
		UnitPrice:   decimal.NewFromFloat(price),
		Discount:    decimal.NewFromFloat(discount),
	}
}

func TestLineSubtotal_CantidadPorPrecioMenosDescuento(t *testing.T) {
	l := line("Ploteo A1", 3, 12.50, 2.50)
	assert.True(t, sales.LineSubtotal(l).Equal(decimal.NewFromFloat(35.00)),
		"subtotal = 3*12.50 - 2.50 = 35.00")
}

// Vector de referencia: líneas (A, 2, 10.00) y (B, 1, 5.00), impuesto 1.50,
// descuento 2.00 → subtotal 25.00, total 24.50.
func TestComputeTotals_VectorReferencia(t *testing.T) {
	lines := []*entity.SaleLine{
		line("A", 2, 10.00, 0),
		line("B", 1, 5.00, 0),
	}
	subtotal, total := sales.ComputeTotals(lines, decimal.NewFromFloat(1.50), decimal.NewFromFloat(2.00))

	assert.True(t, subtotal.Equal(decimal.NewFromFloat(25.00)), "subtotal esperado 25.00, got %s", subtotal)
	assert.True(t, total.Equal(decimal.NewFromFloat(24.50)), "total esperado 24.50, got %s", total)
}

// Al quitar la línea B del vector anterior, el recálculo debe dar 20.00 / 19.50.
func TestComputeTotals_RecalculoTrasQuitarLinea(t *testing.T) {
	lines := []*entity.SaleLine{
		line("A", 2, 10.00, 0),
	}
	subtotal, total := sales.ComputeTotals(lines, decimal.NewFromFloat(1.50), decimal.NewFromFloat(2.00))

	assert.True(t, subtotal.Equal(decimal.NewFromFloat(20.00)), "subtotal esperado 20.00, got %s", subtotal)
	assert.True(t, total.Equal(decimal.NewFromFloat(19.50)), "total esperado 19.50, got %s", total)
}

func TestComputeTotals_SinLineas(t *testing.T) {
	subtotal, total := sales.ComputeTotals(nil, decimal.Zero, decimal.Zero)
	assert.True(t, subtotal.IsZero())
	assert.True(t, total.IsZero())
}

func TestValidLine_Casos(t *testing.T) {
	cases := []struct {
		name  string
		line  *entity.SaleLine
		valid bool
	}{
		{"bien formada", line("Render 3D", 1, 80.00, 0), true},
		{"descripción vacía", line("", 1, 80.00, 0), false},
		{"cantidad cero", line("Render 3D", 0, 80.00, 0), false},
		{"cantidad negativa", line("Render 3D", -2, 80.00, 0), false},
		{"precio negativo", line("Render 3D", 1, -1.00, 0), false},
		{"descuento negativo", line("Render 3D", 1, 80.00, -5.00), false},
		{"precio cero es válido", line("Cortesía", 1, 0, 0), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, sales.ValidLine(tc.line))
		})
	}
}
