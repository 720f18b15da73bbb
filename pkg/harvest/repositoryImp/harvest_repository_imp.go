package repositoryImp

import (
	"gorm.io/gorm"

	"growbro/entities"
	"growbro/pkg/harvest/repository"
)

type harvestRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HarvestRepository { return &harvestRepo{db} }

func (r *harvestRepo) Create(h *entities.Harvest) error { return r.db.Create(h).Error }

func (r *harvestRepo) FindByID(id uint) (*entities.Harvest, error) {
	var h entities.Harvest
	if err := r.db.First(&h, "harvest_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *harvestRepo) Update(h *entities.Harvest) error { return r.db.Save(h).Error }

func (r *harvestRepo) ListByPlant(plantID string) ([]entities.Harvest, error) {
	var out []entities.Harvest
	if err := r.db.Where("plant_id = ?", plantID).Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
