package entities

import "time"

// Series is a recurrence definition that materializes Task occurrences.
// DtstartLocal carries the wall-clock intent (RFC3339 in Timezone),
// DtstartUTC is the unambiguous instant derived from the same value;
// the pair is always written together, never mutated independently.
type Series struct {
	SeriesID     string    `gorm:"primaryKey" json:"series_id"`
	UserID       string    `json:"user_id" gorm:"index"`
	Title        string    `json:"title"`
	RRule        string    `json:"rrule"`
	DtstartLocal string    `json:"dtstart_local"`
	DtstartUTC   time.Time `json:"dtstart_utc" gorm:"index"`
	Timezone     string    `json:"timezone"`
	PlantID      *string   `json:"plant_id" gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
