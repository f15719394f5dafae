package entity

import "github.com/shopspring/decimal"

// Categorías de materiales del taller.
const (
	MaterialCategoryPaper = "papel"
	MaterialCategoryInk   = "tinta"
	MaterialCategoryTool  = "herramienta"
	MaterialCategoryOther = "otro"
)

// Material representa un insumo del taller de ploteo (papel, tinta, herramienta).
// La identidad es inmutable; precios y umbral de stock son editables.
// Nunca se borra físicamente: Active=false lo retira del catálogo (soft delete)
// conservando el historial de inventario y ventas que lo referencian.
type Material struct {
	ID            string
	Name          string
	Description   string
	Category      string // papel, tinta, herramienta, otro
	Subcategory   string // papeles: A0..A4; tintas: negro, color, cyan, magenta, amarillo
	UnitPrice     decimal.Decimal // precio de venta
	PurchasePrice decimal.Decimal // precio de compra
	UnitMeasure   string // unidad, rollo, litro...
	MinStock      int    // umbral de reposición
	Active        bool
}
