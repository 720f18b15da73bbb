package entities

import "time"

type Measurement struct {
	MeasureID   uint      `gorm:"primaryKey" json:"measure_id"`
	PlantID     string    `gorm:"index" json:"plant_id"`
	MeasuredAt  time.Time `json:"measured_at"`
	PH          *float64  `json:"ph"`
	ECMScm      *float64  `json:"ec_ms_cm"`
	TempC       *float64  `json:"temp_c"`
	HumidityPct *float64  `json:"humidity_pct"`
	Note        string    `json:"note"`
	CreatedAt   time.Time
}
