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

// PlanUseCase registra los metadatos de los planos entregados por proyecto.
type PlanUseCase struct {
	repo        repository.PlanRepository
	projectRepo repository.ProjectRepository
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(repo repository.PlanRepository, projectRepo repository.ProjectRepository) *PlanUseCase {
	return &PlanUseCase{repo: repo, projectRepo: projectRepo}
}

// Create registra un plano contra un proyecto y tipo existentes.
func (uc *PlanUseCase) Create(ctx context.Context, uploadedBy string, in dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	if in.Name == "" || in.ProjectID == "" || in.TypeID == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	planType, err := uc.repo.GetTypeByID(in.TypeID)
	if err != nil {
		return nil, err
	}
	if planType == nil {
		return nil, domain.ErrNotFound
	}
	plan := &entity.Plan{
		ID:         uuid.New().String(),
		ProjectID:  in.ProjectID,
		TypeID:     in.TypeID,
		UploadedBy: uploadedBy,
		Name:       in.Name,
		FileName:   in.FileName,
		UploadedAt: time.Now(),
	}
	if err := uc.repo.Create(plan); err != nil {
		return nil, err
	}
	resp := toPlanResponse(plan)
	resp.TypeName = planType.Name
	return resp, nil
}

// GetByID obtiene un plano por ID.
func (uc *PlanUseCase) GetByID(ctx context.Context, id string) (*dto.PlanResponse, error) {
	plan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	resp := toPlanResponse(plan)
	if planType, err := uc.repo.GetTypeByID(plan.TypeID); err == nil && planType != nil {
		resp.TypeName = planType.Name
	}
	return resp, nil
}

// Delete elimina los metadatos de un plano.
func (uc *PlanUseCase) Delete(ctx context.Context, id string) error {
	plan, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if plan == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ListByProject lista los planos de un proyecto.
func (uc *PlanUseCase) ListByProject(ctx context.Context, projectID string, page dto.PageRequest) ([]dto.PlanResponse, error) {
	page.Normalize()
	plans, err := uc.repo.ListByProject(projectID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, *toPlanResponse(p))
	}
	return out, nil
}

// ListTypes lista el catálogo de tipos de plano.
func (uc *PlanUseCase) ListTypes(ctx context.Context) ([]dto.PlanTypeResponse, error) {
	types, err := uc.repo.ListTypes()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlanTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, dto.PlanTypeResponse{ID: t.ID, Name: t.Name, Description: t.Description})
	}
	return out, nil
}

func toPlanResponse(p *entity.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		ID:         p.ID,
		ProjectID:  p.ProjectID,
		TypeID:     p.TypeID,
		UploadedBy: p.UploadedBy,
		Name:       p.Name,
		FileName:   p.FileName,
		UploadedAt: p.UploadedAt,
	}
}
