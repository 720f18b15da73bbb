package entities

import (
	"time"

	"gorm.io/datatypes"
)

type Task struct {
	TaskID      string  `gorm:"primaryKey" json:"task_id"`
	UserID      string  `gorm:"index" json:"user_id"`
	SeriesID    *string `gorm:"index" json:"series_id"` // nil for one-off tasks
	Title       string  `json:"title"`
	Description string  `json:"description"`

	// Same dual-stamp contract as Series.
	DueAtLocal string    `json:"due_at_local"`
	DueAtUTC   time.Time `json:"due_at_utc" gorm:"index"`
	Timezone   string    `json:"timezone"`

	PlantID     *string           `json:"plant_id" gorm:"index"`
	Status      string            `json:"status"` // todo|done
	CompletedAt *time.Time        `json:"completed_at"`
	Metadata    datatypes.JSONMap `json:"metadata"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
