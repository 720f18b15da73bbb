package service

import "growbro/entities"

type PlantService interface {
	CreatePlant(p *entities.Plant) (*entities.Plant, error)
	GetPlantByID(id string, uid string) (*entities.Plant, error)
	ListPlants(uid string) ([]entities.Plant, error)
}
