package repository

import "growbro/entities"

type PlantRepository interface {
	Create(p *entities.Plant) error
	FindByID(id string, uid string) (*entities.Plant, error)
	ListByUser(uid string) ([]entities.Plant, error)
	Update(p *entities.Plant) error
}
