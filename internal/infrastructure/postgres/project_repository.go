package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/asplot/plotshop-api/internal/domain"
	"github.com/asplot/plotshop-api/internal/domain/entity"
	"github.com/asplot/plotshop-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación de ProjectRepository (usable con pool o tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste un nuevo proyecto.
func (r *ProjectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO projects (id, client_id, name, description, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	var endDate *time.Time
	if !project.EndDate.IsZero() {
		endDate = &project.EndDate
	}
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.ClientID, project.Name, nullIfEmpty(project.Description),
		project.StartDate, endDate, project.Status,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `
		SELECT id, client_id, name, COALESCE(description, ''), start_date, end_date, status
		FROM projects WHERE id = $1`
	var p entity.Project
	var endDate *time.Time
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ClientID, &p.Name, &p.Description, &p.StartDate, &endDate, &p.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	if endDate != nil {
		p.EndDate = *endDate
	}
	return &p, nil
}

// Update actualiza el proyecto.
func (r *ProjectRepo) Update(project *entity.Project) error {
	query := `
		UPDATE projects
		SET name = $2, description = $3, end_date = $4, status = $5
		WHERE id = $1`
	var endDate *time.Time
	if !project.EndDate.IsZero() {
		endDate = &project.EndDate
	}
	tag, err := r.q.Exec(context.Background(), query,
		project.ID, project.Name, nullIfEmpty(project.Description), endDate, project.Status,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el proyecto; los planos asociados caen por FK ON DELETE CASCADE.
func (r *ProjectRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista proyectos filtrando por cliente y estado.
func (r *ProjectRepo) List(clientID, status string, limit, offset int) ([]*entity.Project, error) {
	query := `
		SELECT id, client_id, name, COALESCE(description, ''), start_date, end_date, status
		FROM projects
		WHERE ($1 = '' OR client_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY start_date DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, clientID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []*entity.Project
	for rows.Next() {
		var p entity.Project
		var endDate *time.Time
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Name, &p.Description, &p.StartDate, &endDate, &p.Status); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if endDate != nil {
			p.EndDate = *endDate
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
