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

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación de PlanRepository (usable con pool o tx).
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

// Create persiste los metadatos de un plano.
func (r *PlanRepo) Create(plan *entity.Plan) error {
	query := `
		INSERT INTO plans (id, project_id, type_id, uploaded_by, name, file_name, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		plan.ID, plan.ProjectID, plan.TypeID, nullIfEmpty(plan.UploadedBy),
		plan.Name, nullIfEmpty(plan.FileName), plan.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// GetByID obtiene un plano por ID.
func (r *PlanRepo) GetByID(id string) (*entity.Plan, error) {
	query := `
		SELECT id, project_id, type_id, COALESCE(uploaded_by, ''), name, COALESCE(file_name, ''), uploaded_at
		FROM plans WHERE id = $1`
	var p entity.Plan
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ProjectID, &p.TypeID, &p.UploadedBy, &p.Name, &p.FileName, &p.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &p, nil
}

// Delete elimina los metadatos de un plano.
func (r *PlanRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByProject lista los planos de un proyecto, los más recientes primero.
func (r *PlanRepo) ListByProject(projectID string, limit, offset int) ([]*entity.Plan, error) {
	query := `
		SELECT id, project_id, type_id, COALESCE(uploaded_by, ''), name, COALESCE(file_name, ''), uploaded_at
		FROM plans WHERE project_id = $1
		ORDER BY uploaded_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, projectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var out []*entity.Plan
	for rows.Next() {
		var p entity.Plan
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.TypeID, &p.UploadedBy, &p.Name, &p.FileName, &p.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// ListTypes lista el catálogo de tipos de plano.
func (r *PlanRepo) ListTypes() ([]*entity.PlanType, error) {
	query := `SELECT id, name, COALESCE(description, '') FROM plan_types ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list plan types: %w", err)
	}
	defer rows.Close()

	var out []*entity.PlanType
	for rows.Next() {
		var t entity.PlanType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("scan plan type: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// GetTypeByID obtiene un tipo de plano por ID.
func (r *PlanRepo) GetTypeByID(id string) (*entity.PlanType, error) {
	query := `SELECT id, name, COALESCE(description, '') FROM plan_types WHERE id = $1`
	var t entity.PlanType
	err := r.q.QueryRow(context.Background(), query, id).Scan(&t.ID, &t.Name, &t.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan type: %w", err)
	}
	return &t, nil
}
