package service

import "growbro/entities"

// SeriesForm is the schedule-form payload a series is materialized from.
type SeriesForm struct {
	Title         string   `json:"title"`
	Pattern       string   `json:"pattern"` // daily|weekly
	Interval      int      `json:"interval"`
	Weekdays      []string `json:"weekdays"`       // MO..SU, weekly only
	StartTime     string   `json:"start_time"`     // HH:mm
	ReferenceDate string   `json:"reference_date"` // YYYY-MM-DD, defaults to today
	Timezone      string   `json:"timezone"`       // IANA zone, defaults to server zone
	PlantID       *string  `json:"plant_id"`
}

type SeriesService interface {
	Create(uid string, f SeriesForm) (*entities.Series, *entities.Task, error)
	Update(id string, uid string, f SeriesForm) (*entities.Series, error)
	Delete(id string, uid string) error
	Get(id string, uid string) (*entities.Series, error)
}
