package entities

import "time"

type Plant struct {
	PlantID   string    `gorm:"primaryKey" json:"plant_id"`
	UserID    string    `json:"user_id" gorm:"index"`
	Name      string    `json:"name"`
	Strain    string    `json:"strain"`
	Stage     string    `json:"stage"`  // seedling|veg|flower|harvested
	Medium    string    `json:"medium"` // soil|coco|hydro
	StartedAt time.Time `json:"started_at"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
