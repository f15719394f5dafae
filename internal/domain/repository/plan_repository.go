package repository

import "github.com/asplot/plotshop-api/internal/domain/entity"

// PlanRepository define el puerto de persistencia para Plan y PlanType.
// El contenido del archivo vive en el almacenamiento externo; aquí solo metadatos.
type PlanRepository interface {
	Create(plan *entity.Plan) error
	GetByID(id string) (*entity.Plan, error)
	Delete(id string) error
	ListByProject(projectID string, limit, offset int) ([]*entity.Plan, error)
	ListTypes() ([]*entity.PlanType, error)
	GetTypeByID(id string) (*entity.PlanType, error)
}
