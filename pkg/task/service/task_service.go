package service

import (
	"time"

	"growbro/entities"
)

type TaskForm struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     string  `json:"due_date"` // YYYY-MM-DD
	DueTime     string  `json:"due_time"` // HH:mm
	Timezone    string  `json:"timezone"`
	PlantID     *string `json:"plant_id"`
}

type TaskService interface {
	Create(uid string, f TaskForm) (*entities.Task, error)
	// Complete is idempotent; completing twice is a no-op. Virtual
	// occurrence ids (series:<seriesId>:<localDate>) are persisted as
	// completion rows stamped with the occurrence's own zoned instant.
	Complete(uid string, id string) (*entities.Task, error)
	// Calendar merges persisted tasks in [from, to] with virtual
	// occurrences expanded from the user's series.
	Calendar(uid string, from, to time.Time, plantID *string) ([]entities.Task, error)
}
