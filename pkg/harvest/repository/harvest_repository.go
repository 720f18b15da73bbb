package repository

import "growbro/entities"

type HarvestRepository interface {
	Create(h *entities.Harvest) error
	FindByID(id uint) (*entities.Harvest, error)
	Update(h *entities.Harvest) error
	ListByPlant(plantID string) ([]entities.Harvest, error)
}
