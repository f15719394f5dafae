package repository

import "github.com/asplot/plotshop-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByEmail(email string) (*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
	List(search string, limit, offset int) ([]*entity.Client, error)
}
