package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/asplot/plotshop-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Las ventas nunca se borran físicamente: la cancelación es el estado terminal.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateLine(line *entity.SaleLine) error
	GetByID(id string) (*entity.Sale, error)
	// GetForUpdate bloquea la cabecera para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Sale, error)
	// GetLinesBySaleID devuelve las líneas en orden de inserción (line_no).
	GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error)
	DeleteLine(saleID, lineID string) error
	// UpdateTotals persiste subtotal y total recalculados.
	UpdateTotals(id string, subtotal, total decimal.Decimal) error
	UpdateStatus(id, status string) error
	List(status string, since time.Time, limit, offset int) ([]*entity.Sale, error)
}
