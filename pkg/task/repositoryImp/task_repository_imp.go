package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"growbro/entities"
	"growbro/pkg/task/repository"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func (r *taskRepo) Create(t *entities.Task) error { return r.db.Create(t).Error }

func (r *taskRepo) BulkInsert(ts []entities.Task) error {
	if len(ts) == 0 {
		return nil
	}
	return r.db.Create(&ts).Error
}

func (r *taskRepo) FindByID(id string) (*entities.Task, error) {
	var t entities.Task
	if err := r.db.Where("task_id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) Update(t *entities.Task) error { return r.db.Save(t).Error }

func (r *taskRepo) ListRange(uid string, from, to time.Time, plantID *string) ([]entities.Task, error) {
	var out []entities.Task
	q := r.db.Where("due_at_utc >= ? AND due_at_utc <= ?", from, to)
	if uid != "" {
		q = q.Where("user_id = ?", uid)
	}
	if plantID != nil {
		q = q.Where("plant_id = ?", *plantID)
	}
	if err := q.Order("due_at_utc ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) ListBySeries(seriesID string) ([]entities.Task, error) {
	var out []entities.Task
	if err := r.db.Where("series_id = ?", seriesID).Order("due_at_utc ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) FindByOccurrenceKey(uid string, key string) (*entities.Task, error) {
	var t entities.Task
	if err := r.db.Where("user_id = ? AND json_extract(metadata, '$.occurrence_key') = ?", uid, key).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
