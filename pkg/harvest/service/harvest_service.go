package service

import "growbro/entities"

type HarvestPatch struct {
	Status     *string  `json:"status"`
	WetWeightG *float64 `json:"wet_weight_g"`
	DryWeightG *float64 `json:"dry_weight_g"`
	Notes      *string  `json:"notes"`
}

type HarvestService interface {
	Create(h *entities.Harvest) error
	UpdatePartial(id uint, p HarvestPatch) (*entities.Harvest, error)
	ListByPlant(plantID string) ([]entities.Harvest, error)
}
