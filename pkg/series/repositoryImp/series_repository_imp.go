package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"growbro/entities"
	"growbro/pkg/series/repository"
)

type seriesRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SeriesRepository { return &seriesRepo{db} }

func (r *seriesRepo) CreateWithFirstTask(s *entities.Series, t *entities.Task) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}
		return tx.Create(t).Error
	})
}

func (r *seriesRepo) Update(s *entities.Series) error { return r.db.Save(s).Error }

func (r *seriesRepo) FindByID(id string, uid string) (*entities.Series, error) {
	var s entities.Series
	q := r.db.Where("series_id = ?", id)
	if uid != "" {
		q = q.Where("user_id = ?", uid)
	}
	if err := q.First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *seriesRepo) ListByUser(uid string) ([]entities.Series, error) {
	var out []entities.Series
	if err := r.db.Where("user_id = ?", uid).Order("dtstart_utc ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *seriesRepo) DeleteCascadeFuture(id string, now time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("series_id = ? AND due_at_utc >= ?", id, now).Delete(&entities.Task{}).Error; err != nil {
			return err
		}
		// keep history: past occurrences survive, detached
		if err := tx.Model(&entities.Task{}).Where("series_id = ?", id).Update("series_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("series_id = ?", id).Delete(&entities.Series{}).Error
	})
}
