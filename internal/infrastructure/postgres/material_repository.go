package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/asplot/plotshop-api/internal/domain"
	"github.com/asplot/plotshop-api/internal/domain/entity"
	"github.com/asplot/plotshop-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, name, description, category, subcategory, unit_price, purchase_price, unit_measure, min_stock, active`

// Create persiste un nuevo material.
func (r *MaterialRepo) Create(material *entity.Material) error {
	query := `
		INSERT INTO materials (` + materialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Name, material.Description, material.Category, material.Subcategory,
		material.UnitPrice, material.PurchasePrice, material.UnitMeasure, material.MinStock, material.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	m, err := scanMaterial(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

// Update actualiza los campos editables del material.
func (r *MaterialRepo) Update(material *entity.Material) error {
	query := `
		UPDATE materials
		SET name = $2, description = $3, category = $4, subcategory = $5,
		    unit_price = $6, purchase_price = $7, unit_measure = $8, min_stock = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		material.ID, material.Name, material.Description, material.Category, material.Subcategory,
		material.UnitPrice, material.PurchasePrice, material.UnitMeasure, material.MinStock,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate retira el material del catálogo (soft delete).
func (r *MaterialRepo) Deactivate(id string) error {
	tag, err := r.q.Exec(context.Background(), `UPDATE materials SET active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListActive lista materiales activos con filtro por categoría y búsqueda de texto.
func (r *MaterialRepo) ListActive(category, search string, limit, offset int) ([]*entity.Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials
		WHERE active = true
		  AND ($1 = '' OR category = $1)
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
		ORDER BY name
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, category, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var out []*entity.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	var description, subcategory, unitMeasure *string
	err := row.Scan(
		&m.ID, &m.Name, &description, &m.Category, &subcategory,
		&m.UnitPrice, &m.PurchasePrice, &unitMeasure, &m.MinStock, &m.Active,
	)
	if err != nil {
		return nil, err
	}
	m.Description = derefStr(description)
	m.Subcategory = derefStr(subcategory)
	m.UnitMeasure = derefStr(unitMeasure)
	return &m, nil
}
