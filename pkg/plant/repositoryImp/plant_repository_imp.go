package repositoryImp

import (
	"growbro/entities"
	"growbro/pkg/plant/repository"

	"gorm.io/gorm"
)

type plantRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantRepository { return &plantRepo{db} }

func (r *plantRepo) Create(p *entities.Plant) error { return r.db.Create(p).Error }

func (r *plantRepo) FindByID(id string, uid string) (*entities.Plant, error) {
	var p entities.Plant
	if err := r.db.Where("plant_id = ? AND user_id = ?", id, uid).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantRepo) ListByUser(uid string) ([]entities.Plant, error) {
	var out []entities.Plant
	if err := r.db.Where("user_id = ?", uid).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *plantRepo) Update(p *entities.Plant) error { return r.db.Save(p).Error }
