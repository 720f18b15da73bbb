package repository

import (
	"time"

	"growbro/entities"
)

type SeriesRepository interface {
	CreateWithFirstTask(s *entities.Series, t *entities.Task) error
	Update(s *entities.Series) error
	FindByID(id string, uid string) (*entities.Series, error)
	ListByUser(uid string) ([]entities.Series, error)
	// DeleteCascadeFuture removes the series and its tasks due at or
	// after now; earlier tasks are detached and kept.
	DeleteCascadeFuture(id string, now time.Time) error
}
