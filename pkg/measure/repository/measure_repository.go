package repository

import "growbro/entities"

type MeasureRepository interface {
	Create(m *entities.Measurement) error
	Recent(plantID string, days int) ([]entities.Measurement, error)
	ListAsc(plantID string) ([]entities.Measurement, error)
}
