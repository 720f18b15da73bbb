package entities

import "time"

type Harvest struct {
	HarvestID   uint     `gorm:"primaryKey" json:"harvest_id"`
	PlantID     string   `gorm:"index" json:"plant_id"`
	Date        string   `gorm:"index" json:"date"`   // YYYY-MM-DD
	Status      string   `gorm:"index" json:"status"` // planned|drying|curing|done
	WetWeightG  *float64 `json:"wet_weight_g"`
	DryWeightG  *float64 `json:"dry_weight_g"`
	DryRatioPct *float64 `json:"dry_ratio_pct"` // derived dry/wet
	Notes       string   `json:"notes"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
