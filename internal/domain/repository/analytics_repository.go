package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CountsSummary totales de registros para las tarjetas KPI del dashboard.
type CountsSummary struct {
	Clients  int
	Projects int
	Plans    int
	Sales    int
}

// RecentSaleRow fila cruda del listado de ventas recientes (con el nombre del cliente resuelto).
type RecentSaleRow struct {
	SaleID     string
	ClientName string
	Date       time.Time
	Total      decimal.Decimal
	Status     string
}

// RecentProjectRow fila cruda del listado de proyectos recientes.
type RecentProjectRow struct {
	ProjectID  string
	Name       string
	ClientName string
	StartDate  time.Time
	Status     string
}

// AnalyticsRepository define las consultas de lectura agregadas que consumen
// el dashboard y los reportes. Las implementaciones son read-only: cada método
// es una sola sentencia SQL, por lo que refleja un snapshot consistente.
type AnalyticsRepository interface {
	// TotalInventoryValue devuelve Σ cantidad * precio_unitario sobre materiales activos.
	TotalInventoryValue(ctx context.Context) (decimal.Decimal, error)
	// TotalRevenue devuelve Σ total de las ventas con el estado indicado.
	TotalRevenue(ctx context.Context, status string) (decimal.Decimal, error)
	// TotalStockUnits devuelve la existencia total (Σ cantidad) de materiales activos.
	TotalStockUnits(ctx context.Context) (int64, error)
	GetCounts(ctx context.Context) (CountsSummary, error)
	RecentSales(ctx context.Context, limit int) ([]RecentSaleRow, error)
	RecentProjects(ctx context.Context, limit int) ([]RecentProjectRow, error)
}
