package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/asplot/plotshop-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de lectura agregadas para el dashboard (read-only).
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// TotalInventoryValue devuelve Σ cantidad * precio_unitario sobre materiales activos.
func (r *AnalyticsRepo) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(i.quantity * m.unit_price), 0)
		FROM inventory i
		JOIN materials m ON m.id = i.material_id
		WHERE m.active = true`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total inventory value: %w", err)
	}
	return total, nil
}

// TotalRevenue devuelve Σ total de las ventas con el estado indicado.
func (r *AnalyticsRepo) TotalRevenue(ctx context.Context, status string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(total), 0) FROM sales WHERE status = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, status).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total revenue: %w", err)
	}
	return total, nil
}

// TotalStockUnits devuelve la existencia total de materiales activos.
func (r *AnalyticsRepo) TotalStockUnits(ctx context.Context) (int64, error) {
	query := `
		SELECT COALESCE(SUM(i.quantity), 0)
		FROM inventory i
		JOIN materials m ON m.id = i.material_id
		WHERE m.active = true`
	var total int64
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("total stock units: %w", err)
	}
	return total, nil
}

// GetCounts devuelve los conteos de las tarjetas KPI en una sola consulta.
func (r *AnalyticsRepo) GetCounts(ctx context.Context) (repository.CountsSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM clients),
			(SELECT COUNT(*) FROM projects),
			(SELECT COUNT(*) FROM plans),
			(SELECT COUNT(*) FROM sales)`
	var c repository.CountsSummary
	if err := r.q.QueryRow(ctx, query).Scan(&c.Clients, &c.Projects, &c.Plans, &c.Sales); err != nil {
		return repository.CountsSummary{}, fmt.Errorf("get counts: %w", err)
	}
	return c, nil
}

// RecentSales devuelve las últimas ventas con el nombre del cliente resuelto.
func (r *AnalyticsRepo) RecentSales(ctx context.Context, limit int) ([]repository.RecentSaleRow, error) {
	query := `
		SELECT s.id, c.name || ' ' || c.surname, s.date, s.total, s.status
		FROM sales s
		JOIN clients c ON c.id = s.client_id
		ORDER BY s.date DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	defer rows.Close()

	var out []repository.RecentSaleRow
	for rows.Next() {
		var row repository.RecentSaleRow
		if err := rows.Scan(&row.SaleID, &row.ClientName, &row.Date, &row.Total, &row.Status); err != nil {
			return nil, fmt.Errorf("scan recent sale: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// RecentProjects devuelve los últimos proyectos con el nombre del cliente resuelto.
func (r *AnalyticsRepo) RecentProjects(ctx context.Context, limit int) ([]repository.RecentProjectRow, error) {
	query := `
		SELECT p.id, p.name, c.name || ' ' || c.surname, p.start_date, p.status
		FROM projects p
		JOIN clients c ON c.id = p.client_id
		ORDER BY p.start_date DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent projects: %w", err)
	}
	defer rows.Close()

	var out []repository.RecentProjectRow
	for rows.Next() {
		var row repository.RecentProjectRow
		if err := rows.Scan(&row.ProjectID, &row.Name, &row.ClientName, &row.StartDate, &row.Status); err != nil {
			return nil, fmt.Errorf("scan recent project: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
