package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asplot/plotshop-api/internal/application/inventory"
	"github.com/asplot/plotshop-api/internal/domain/entity"
	"github.com/asplot/plotshop-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeAnalyticsRepo struct {
	counts         repository.CountsSummary
	inventoryValue decimal.Decimal
	revenue        decimal.Decimal
	stockUnits     int64
	recentSales    []repository.RecentSaleRow
	recentProjects []repository.RecentProjectRow

	revenueStatus string // estado con el que se pidió el ingreso
}

func (f *fakeAnalyticsRepo) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	return f.inventoryValue, nil
}

func (f *fakeAnalyticsRepo) TotalRevenue(ctx context.Context, status string) (decimal.Decimal, error) {
	f.revenueStatus = status
	return f.revenue, nil
}

func (f *fakeAnalyticsRepo) TotalStockUnits(ctx context.Context) (int64, error) {
	return f.stockUnits, nil
}

func (f *fakeAnalyticsRepo) GetCounts(ctx context.Context) (repository.CountsSummary, error) {
	return f.counts, nil
}

func (f *fakeAnalyticsRepo) RecentSales(ctx context.Context, limit int) ([]repository.RecentSaleRow, error) {
	if len(f.recentSales) > limit {
		return f.recentSales[:limit], nil
	}
	return f.recentSales, nil
}

func (f *fakeAnalyticsRepo) RecentProjects(ctx context.Context, limit int) ([]repository.RecentProjectRow, error) {
	if len(f.recentProjects) > limit {
		return f.recentProjects[:limit], nil
	}
	return f.recentProjects, nil
}

type fakeStockRepo struct {
	lowStock []repository.LowStockItem
}

func (f *fakeStockRepo) Get(materialID string) (*entity.InventoryRecord, error)          { return nil, nil }
func (f *fakeStockRepo) Upsert(record *entity.InventoryRecord) error                     { return nil }
func (f *fakeStockRepo) GetForUpdate(materialID string) (*entity.InventoryRecord, error) { return nil, nil }
func (f *fakeStockRepo) List(limit, offset int) ([]repository.LowStockItem, error)       { return nil, nil }
func (f *fakeStockRepo) ListLowStock() ([]repository.LowStockItem, error)                { return f.lowStock, nil }

// ──────────────────────────────────────────────────────────────────────────────
// GetSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_ArmaElResumenCompleto(t *testing.T) {
	now := time.Now()
	analyticsRepo := &fakeAnalyticsRepo{
		counts: repository.CountsSummary{
			Clients:  12,
			Projects: 7,
			Plans:    31,
			Sales:    45,
		},
		inventoryValue: decimal.RequireFromString("22.005"),
		revenue:        decimal.RequireFromString("1850.50"),
		stockUnits:     260,
		recentSales: []repository.RecentSaleRow{
			{SaleID: "v-1", ClientName: "Carlos Pérez", Date: now, Total: decimal.RequireFromString("120.00"), Status: entity.SaleStatusCompleted},
			{SaleID: "v-2", ClientName: "Ana Muñoz", Date: now, Total: decimal.RequireFromString("80.00"), Status: entity.SaleStatusCancelled},
		},
		recentProjects: []repository.RecentProjectRow{
			{ProjectID: "p-1", Name: "Torre Norte", ClientName: "Carlos Pérez", StartDate: now, Status: "activo"},
		},
	}
	stockRepo := &fakeStockRepo{
		lowStock: []repository.LowStockItem{
			{MaterialID: "m-1", MaterialName: "Tinta cyan", Category: "tinta", Quantity: 1, MinStock: 2, UpdatedAt: now},
			{MaterialID: "m-2", MaterialName: "Bond 90g rollo 0.61m", Category: "papel", Quantity: 5, MinStock: 5, UpdatedAt: now},
		},
	}

	uc := NewDashboardUseCase(analyticsRepo, inventory.NewReplenishmentUseCase(stockRepo))

	resp, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, 12, resp.TotalClients)
	assert.Equal(t, 7, resp.TotalProjects)
	assert.Equal(t, 31, resp.TotalPlans)
	assert.Equal(t, 45, resp.TotalSales)
	assert.Equal(t, int64(260), resp.TotalStockUnits)

	// Los montos se redondean a dos decimales para la respuesta
	assert.Equal(t, "22.01", resp.TotalInventoryValue.StringFixed(2))
	assert.Equal(t, "1850.50", resp.TotalRevenue.StringFixed(2))

	assert.Len(t, resp.RecentSales, 2)
	assert.Equal(t, "v-1", resp.RecentSales[0].SaleID)
	assert.Equal(t, "Carlos Pérez", resp.RecentSales[0].ClientName)
	assert.Len(t, resp.RecentProjects, 1)
	assert.Equal(t, "Torre Norte", resp.RecentProjects[0].Name)

	// El reporte de stock bajo llega ordenado por nombre y con el déficit calculado
	assert.Equal(t, 2, resp.LowStockCount)
	require.Len(t, resp.LowStockItems, 2)
	assert.Equal(t, "Bond 90g rollo 0.61m", resp.LowStockItems[0].MaterialName)
	assert.Equal(t, 0, resp.LowStockItems[0].Deficit)
	assert.Equal(t, "Tinta cyan", resp.LowStockItems[1].MaterialName)
	assert.Equal(t, 1, resp.LowStockItems[1].Deficit)
}

func TestGetSummary_IngresosSoloDeVentasCompletadas(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{
		inventoryValue: decimal.Zero,
		revenue:        decimal.RequireFromString("500.00"),
	}
	uc := NewDashboardUseCase(analyticsRepo, inventory.NewReplenishmentUseCase(&fakeStockRepo{}))

	resp, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusCompleted, analyticsRepo.revenueStatus)
	assert.Equal(t, "500.00", resp.TotalRevenue.StringFixed(2))
}

func TestGetSummary_RecientesRespetanElLimite(t *testing.T) {
	rows := make([]repository.RecentSaleRow, 0, 8)
	for i := 0; i < 8; i++ {
		rows = append(rows, repository.RecentSaleRow{
			SaleID: "v", Total: decimal.Zero, Status: entity.SaleStatusCompleted,
		})
	}
	analyticsRepo := &fakeAnalyticsRepo{recentSales: rows}
	uc := NewDashboardUseCase(analyticsRepo, inventory.NewReplenishmentUseCase(&fakeStockRepo{}))

	resp, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.RecentSales, dashboardRecentRows)
}
