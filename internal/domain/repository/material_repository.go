package repository

import "github.com/asplot/plotshop-api/internal/domain/entity"

// MaterialRepository define el puerto de persistencia para Material.
// Delete es lógico (Active=false): los materiales referenciados por inventario
// o ventas nunca se borran físicamente.
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	Update(material *entity.Material) error
	Deactivate(id string) error
	// ListActive devuelve materiales activos, filtrando opcionalmente por
	// categoría y texto de búsqueda en nombre/descripción.
	ListActive(category, search string, limit, offset int) ([]*entity.Material, error)
}
