package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"growbro/entities"
	"growbro/pkg/measure/repository"
)

type measureRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MeasureRepository { return &measureRepo{db} }

func (r *measureRepo) Create(m *entities.Measurement) error { return r.db.Create(m).Error }

func (r *measureRepo) Recent(plantID string, days int) ([]entities.Measurement, error) {
	var out []entities.Measurement
	cut := time.Now().AddDate(0, 0, -days)
	if err := r.db.Where("plant_id = ? AND measured_at >= ?", plantID, cut).Order("measured_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *measureRepo) ListAsc(plantID string) ([]entities.Measurement, error) {
	var out []entities.Measurement
	if err := r.db.Where("plant_id = ?", plantID).Order("measured_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
