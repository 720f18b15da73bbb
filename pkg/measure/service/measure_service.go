package service

import (
	"time"

	"growbro/entities"
)

type ChartPoint struct {
	MeasuredAt time.Time `json:"measured_at"`
	Value      float64   `json:"value"`
}

type MeasureService interface {
	Create(m *entities.Measurement) error
	Recent(plantID string, days int) ([]entities.Measurement, error)
	// Chart returns at most points readings of one metric (ph, ec,
	// temp, humidity), downsampled while keeping visual shape.
	Chart(plantID string, metric string, points int) ([]ChartPoint, error)
}
