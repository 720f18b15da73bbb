package repository

import (
	"time"

	"growbro/entities"
)

type TaskRepository interface {
	Create(t *entities.Task) error
	BulkInsert(ts []entities.Task) error
	FindByID(id string) (*entities.Task, error)
	Update(t *entities.Task) error
	ListRange(uid string, from, to time.Time, plantID *string) ([]entities.Task, error)
	ListBySeries(seriesID string) ([]entities.Task, error)
	// FindByOccurrenceKey resolves a persisted completion of a virtual
	// occurrence through metadata.occurrence_key, scoped to the owner.
	FindByOccurrenceKey(uid string, key string) (*entities.Task, error)
}
