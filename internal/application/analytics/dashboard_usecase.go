// Package analytics contiene el caso de uso del resumen operativo del taller.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/asplot/plotshop-api/internal/application/dto"
	"github.com/asplot/plotshop-api/internal/application/inventory"
	"github.com/asplot/plotshop-api/internal/domain/entity"
	"github.com/asplot/plotshop-api/internal/domain/repository"
)

const dashboardRecentRows = 5 // filas en las tablas de recientes

// DashboardUseCase genera el resumen del dashboard: conteos, valor de
// inventario, ingresos y listados recientes.
//
// Fuente de datos: AnalyticsRepository (consultas read-only) más el reporte
// de stock bajo del módulo de inventario.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	replenishment *inventory.ReplenishmentUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	replenishment *inventory.ReplenishmentUseCase,
) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, replenishment: replenishment}
}

// GetSummary construye el DashboardResponse.
//
// Las consultas agregadas corren en paralelo; cada una es una sola sentencia
// SQL, así que el resumen refleja snapshots consistentes por métrica.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	type countsResult struct {
		counts repository.CountsSummary
		err    error
	}
	type decimalResult struct {
		value decimal.Decimal
		err   error
	}
	type int64Result struct {
		value int64
		err   error
	}
	type salesResult struct {
		rows []repository.RecentSaleRow
		err  error
	}
	type projectsResult struct {
		rows []repository.RecentProjectRow
		err  error
	}
	type lowStockResult struct {
		items []dto.LowStockItemResponse
		err   error
	}

	countsCh := make(chan countsResult, 1)
	valueCh := make(chan decimalResult, 1)
	revenueCh := make(chan decimalResult, 1)
	unitsCh := make(chan int64Result, 1)
	salesCh := make(chan salesResult, 1)
	projectsCh := make(chan projectsResult, 1)
	lowStockCh := make(chan lowStockResult, 1)

	go func() {
		c, err := uc.analyticsRepo.GetCounts(ctx)
		countsCh <- countsResult{c, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.TotalInventoryValue(ctx)
		valueCh <- decimalResult{v, err}
	}()
	go func() {
		// Solo ventas completadas; las canceladas no cuentan como ingreso
		v, err := uc.analyticsRepo.TotalRevenue(ctx, entity.SaleStatusCompleted)
		revenueCh <- decimalResult{v, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.TotalStockUnits(ctx)
		unitsCh <- int64Result{v, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.RecentSales(ctx, dashboardRecentRows)
		salesCh <- salesResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.RecentProjects(ctx, dashboardRecentRows)
		projectsCh <- projectsResult{rows, err}
	}()
	go func() {
		items, err := uc.replenishment.ListLowStock(ctx)
		lowStockCh <- lowStockResult{items, err}
	}()

	counts := <-countsCh
	value := <-valueCh
	revenue := <-revenueCh
	units := <-unitsCh
	recentSales := <-salesCh
	recentProjects := <-projectsCh
	lowStock := <-lowStockCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}
	if value.err != nil {
		return nil, fmt.Errorf("dashboard: valor de inventario: %w", value.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos: %w", revenue.err)
	}
	if units.err != nil {
		return nil, fmt.Errorf("dashboard: existencias: %w", units.err)
	}
	if recentSales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", recentSales.err)
	}
	if recentProjects.err != nil {
		return nil, fmt.Errorf("dashboard: proyectos recientes: %w", recentProjects.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}

	resp := &dto.DashboardResponse{
		TotalClients:        counts.counts.Clients,
		TotalProjects:       counts.counts.Projects,
		TotalPlans:          counts.counts.Plans,
		TotalSales:          counts.counts.Sales,
		TotalStockUnits:     units.value,
		TotalInventoryValue: value.value.Round(2),
		TotalRevenue:        revenue.value.Round(2),
		LowStockCount:       len(lowStock.items),
		LowStockItems:       lowStock.items,
		RecentSales:         make([]dto.RecentSaleDTO, 0, len(recentSales.rows)),
		RecentProjects:      make([]dto.RecentProjectDTO, 0, len(recentProjects.rows)),
	}
	for _, row := range recentSales.rows {
		resp.RecentSales = append(resp.RecentSales, dto.RecentSaleDTO{
			SaleID:     row.SaleID,
			ClientName: row.ClientName,
			Date:       row.Date,
			Total:      row.Total,
			Status:     row.Status,
		})
	}
	for _, row := range recentProjects.rows {
		resp.RecentProjects = append(resp.RecentProjects, dto.RecentProjectDTO{
			ProjectID:  row.ProjectID,
			Name:       row.Name,
			ClientName: row.ClientName,
			StartDate:  row.StartDate,
			Status:     row.Status,
		})
	}
	return resp, nil
}
