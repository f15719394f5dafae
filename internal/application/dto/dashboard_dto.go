package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardResponse resumen operativo del taller en una sola respuesta.
type DashboardResponse struct {
	TotalClients        int                    `json:"total_clients"`
	TotalProjects       int                    `json:"total_projects"`
	TotalPlans          int                    `json:"total_plans"`
	TotalSales          int                    `json:"total_sales"`
	TotalStockUnits     int64                  `json:"total_stock_units"`
	TotalInventoryValue decimal.Decimal        `json:"total_inventory_value"`
	TotalRevenue        decimal.Decimal        `json:"total_revenue"`
	LowStockCount       int                    `json:"low_stock_count"`
	LowStockItems       []LowStockItemResponse `json:"low_stock_items"`
	RecentSales         []RecentSaleDTO        `json:"recent_sales"`
	RecentProjects      []RecentProjectDTO     `json:"recent_projects"`
}

// RecentSaleDTO venta reciente para la tabla del dashboard.
type RecentSaleDTO struct {
	SaleID     string          `json:"sale_id"`
	ClientName string          `json:"client_name"`
	Date       time.Time       `json:"date"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
}

// RecentProjectDTO proyecto reciente para la tabla del dashboard.
type RecentProjectDTO struct {
	ProjectID  string    `json:"project_id"`
	Name       string    `json:"name"`
	ClientName string    `json:"client_name"`
	StartDate  time.Time `json:"start_date"`
	Status     string    `json:"status"`
}
