package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/asplot/plotshop-api/internal/application/dto"
	"github.com/asplot/plotshop-api/internal/domain"
	"github.com/asplot/plotshop-api/internal/domain/entity"
	"github.com/asplot/plotshop-api/internal/domain/repository"
)

// ProjectUseCase casos de uso CRUD para proyectos.
type ProjectUseCase struct {
	repo       repository.ProjectRepository
	clientRepo repository.ClientRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, clientRepo repository.ClientRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, clientRepo: clientRepo}
}

func validProjectStatus(s string) bool {
	switch s {
	case entity.ProjectStatusPlanning, entity.ProjectStatusInProgress,
		entity.ProjectStatusCompleted, entity.ProjectStatusCancelled:
		return true
	}
	return false
}

// Create crea un proyecto para un cliente existente. Nace en planificación.
func (uc *ProjectUseCase) Create(ctx context.Context, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	start := time.Now()
	if in.StartDate != nil {
		start = *in.StartDate
	}
	project := &entity.Project{
		ID:          uuid.New().String(),
		ClientID:    in.ClientID,
		Name:        in.Name,
		Description: in.Description,
		StartDate:   start,
		Status:      entity.ProjectStatusPlanning,
	}
	if in.EndDate != nil {
		if in.EndDate.Before(start) {
			return nil, domain.ErrInvalidInput
		}
		project.EndDate = *in.EndDate
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	resp := toProjectResponse(project)
	resp.ClientName = client.FullName()
	return resp, nil
}

// GetByID obtiene un proyecto por ID.
func (uc *ProjectUseCase) GetByID(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProjectResponse(project)
	if client, err := uc.clientRepo.GetByID(project.ClientID); err == nil && client != nil {
		resp.ClientName = client.FullName()
	}
	return resp, nil
}

// Update actualiza nombre, descripción, estado o fecha de fin.
func (uc *ProjectUseCase) Update(ctx context.Context, id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Status != nil {
		if !validProjectStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		project.Status = *in.Status
	}
	if in.EndDate != nil {
		if in.EndDate.Before(project.StartDate) {
			return nil, domain.ErrInvalidInput
		}
		project.EndDate = *in.EndDate
	}
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Delete elimina un proyecto (y en cascada los metadatos de sus planos).
func (uc *ProjectUseCase) Delete(ctx context.Context, id string) error {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista proyectos filtrando por cliente y estado.
func (uc *ProjectUseCase) List(ctx context.Context, filter dto.ProjectListFilter) ([]dto.ProjectResponse, error) {
	filter.Normalize()
	if filter.Status != "" && !validProjectStatus(filter.Status) {
		return nil, domain.ErrInvalidInput
	}
	projects, err := uc.repo.List(filter.ClientID, filter.Status, filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, *toProjectResponse(p))
	}
	return out, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	resp := &dto.ProjectResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		Status:      p.Status,
	}
	if !p.EndDate.IsZero() {
		end := p.EndDate
		resp.EndDate = &end
	}
	return resp
}
