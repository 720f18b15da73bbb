package serviceImp

import (
	"errors"
	"fmt"

	"growbro/entities"
	repo "growbro/pkg/measure/repository"
	"growbro/pkg/measure/service"
)

type measureSvc struct{ r repo.MeasureRepository }

func NewMeasureService(r repo.MeasureRepository) service.MeasureService { return &measureSvc{r} }

func (s *measureSvc) Create(m *entities.Measurement) error {
	if m.PlantID == "" {
		return errors.New("plant_id is required")
	}
	if m.PH == nil && m.ECMScm == nil && m.TempC == nil && m.HumidityPct == nil {
		return errors.New("at least one reading is required")
	}
	if m.PH != nil && (*m.PH < 0 || *m.PH > 14) {
		return fmt.Errorf("ph %.2f out of range", *m.PH)
	}
	return s.r.Create(m)
}

func (s *measureSvc) Recent(plantID string, days int) ([]entities.Measurement, error) {
	return s.r.Recent(plantID, days)
}

func (s *measureSvc) Chart(plantID string, metric string, points int) ([]service.ChartPoint, error) {
	pick := func(m entities.Measurement) *float64 { return m.PH }
	switch metric {
	case "", "ph":
	case "ec":
		pick = func(m entities.Measurement) *float64 { return m.ECMScm }
	case "temp":
		pick = func(m entities.Measurement) *float64 { return m.TempC }
	case "humidity":
		pick = func(m entities.Measurement) *float64 { return m.HumidityPct }
	default:
		return nil, fmt.Errorf("unknown metric %q", metric)
	}

	rows, err := s.r.ListAsc(plantID)
	if err != nil {
		return nil, err
	}
	data := make([]service.ChartPoint, 0, len(rows))
	for _, m := range rows {
		if v := pick(m); v != nil {
			data = append(data, service.ChartPoint{MeasuredAt: m.MeasuredAt, Value: *v})
		}
	}
	if points <= 0 {
		points = 200
	}
	return downsampleLTTB(data, points), nil
}
