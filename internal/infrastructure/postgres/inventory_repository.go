package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/asplot/plotshop-api/internal/domain/entity"
	"github.com/asplot/plotshop-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene la existencia actual de un material.
// Si el material aún no tiene registro, devuelve existencia cero.
func (r *InventoryRepo) Get(materialID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT material_id, quantity, COALESCE(location, ''), updated_at
		FROM inventory WHERE material_id = $1`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, materialID).Scan(
		&rec.MaterialID, &rec.Quantity, &rec.Location, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryRecord{MaterialID: materialID, UpdatedAt: time.Now()}, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &rec, nil
}

// GetForUpdate obtiene la existencia y bloquea la fila para update (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(materialID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT material_id, quantity, COALESCE(location, ''), updated_at
		FROM inventory WHERE material_id = $1
		FOR UPDATE`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, materialID).Scan(
		&rec.MaterialID, &rec.Quantity, &rec.Location, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryRecord{MaterialID: materialID, UpdatedAt: time.Now()}, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &rec, nil
}

// Upsert inserta o actualiza la existencia de un material.
func (r *InventoryRepo) Upsert(record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (material_id, quantity, location, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (material_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, location = EXCLUDED.location, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		record.MaterialID, record.Quantity, nullIfEmpty(record.Location), record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// List devuelve las existencias de los materiales activos con sus datos de catálogo.
func (r *InventoryRepo) List(limit, offset int) ([]repository.LowStockItem, error) {
	query := `
		SELECT i.material_id, m.name, m.category, i.quantity, m.min_stock, COALESCE(i.location, ''), i.updated_at
		FROM inventory i
		JOIN materials m ON m.id = i.material_id
		WHERE m.active = true
		ORDER BY m.name
		LIMIT $1 OFFSET $2`
	return r.queryItems(query, limit, offset)
}

// ListLowStock devuelve las existencias de materiales activos con cantidad <= stock mínimo.
func (r *InventoryRepo) ListLowStock() ([]repository.LowStockItem, error) {
	query := `
		SELECT i.material_id, m.name, m.category, i.quantity, m.min_stock, COALESCE(i.location, ''), i.updated_at
		FROM inventory i
		JOIN materials m ON m.id = i.material_id
		WHERE m.active = true AND i.quantity <= m.min_stock`
	return r.queryItems(query)
}

func (r *InventoryRepo) queryItems(query string, args ...any) ([]repository.LowStockItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()

	var out []repository.LowStockItem
	for rows.Next() {
		var it repository.LowStockItem
		if err := rows.Scan(
			&it.MaterialID, &it.MaterialName, &it.Category,
			&it.Quantity, &it.MinStock, &it.Location, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
