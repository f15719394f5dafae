package repository

import "github.com/asplot/plotshop-api/internal/domain/entity"

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	Update(project *entity.Project) error
	Delete(id string) error
	List(clientID, status string, limit, offset int) ([]*entity.Project, error)
}
