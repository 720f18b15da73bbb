package serviceImp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"growbro/entities"
	"growbro/pkg/recurrence"
	repo "growbro/pkg/series/repository"
	"growbro/pkg/series/service"
)

type seriesSvc struct {
	r         repo.SeriesRepository
	defaultTZ string
	now       func() time.Time
}

func NewSeriesService(r repo.SeriesRepository, defaultTZ string) service.SeriesService {
	return &seriesSvc{r: r, defaultTZ: defaultTZ, now: time.Now}
}

// NewSeriesServiceAt pins the clock, for tests.
func NewSeriesServiceAt(r repo.SeriesRepository, defaultTZ string, now func() time.Time) service.SeriesService {
	return &seriesSvc{r: r, defaultTZ: defaultTZ, now: now}
}

func (s *seriesSvc) buildRule(f service.SeriesForm) (string, error) {
	switch f.Pattern {
	case "daily":
		return recurrence.DailyRRule(f.Interval)
	case "weekly":
		return recurrence.WeeklyRRule(f.Weekdays, f.Interval)
	default:
		return "", fmt.Errorf("unknown pattern %q (want daily or weekly)", f.Pattern)
	}
}

// materializeStart computes the single zoned instant both stamps derive
// from: reference date (today when absent) + HH:mm start time, in the
// target zone.
func (s *seriesSvc) materializeStart(f service.SeriesForm) (time.Time, string, error) {
	tz := f.Timezone
	if tz == "" {
		tz = s.defaultTZ
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("unknown timezone %q: %w", tz, err)
	}

	ref := s.now().In(loc)
	if f.ReferenceDate != "" {
		ref, err = time.ParseInLocation("2006-01-02", f.ReferenceDate, loc)
		if err != nil {
			return time.Time{}, "", fmt.Errorf("bad reference date %q: %w", f.ReferenceDate, err)
		}
	}

	st, err := time.Parse("15:04", f.StartTime)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("bad start time %q (want HH:mm): %w", f.StartTime, err)
	}

	start := time.Date(ref.Year(), ref.Month(), ref.Day(), st.Hour(), st.Minute(), 0, 0, loc)
	return start, tz, nil
}

func (s *seriesSvc) Create(uid string, f service.SeriesForm) (*entities.Series, *entities.Task, error) {
	if strings.TrimSpace(f.Title) == "" {
		return nil, nil, errors.New("title is required")
	}
	rule, err := s.buildRule(f)
	if err != nil {
		return nil, nil, err
	}
	start, tz, err := s.materializeStart(f)
	if err != nil {
		return nil, nil, err
	}

	// Both stamps come from the one instant; never parsed independently.
	series := &entities.Series{
		SeriesID:     uuid.NewString(),
		UserID:       uid,
		Title:        f.Title,
		RRule:        rule,
		DtstartLocal: start.Format(time.RFC3339),
		DtstartUTC:   start.UTC(),
		Timezone:     tz,
		PlantID:      f.PlantID,
	}

	// First occurrence is DTSTART itself.
	first, ok, err := recurrence.NextAfter(rule, start, start)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, errors.New("recurrence rule yields no occurrences")
	}
	firstLocal := first.In(start.Location())
	task := &entities.Task{
		TaskID:     uuid.NewString(),
		UserID:     uid,
		SeriesID:   &series.SeriesID,
		Title:      f.Title,
		DueAtLocal: firstLocal.Format(time.RFC3339),
		DueAtUTC:   first.UTC(),
		Timezone:   tz,
		PlantID:    f.PlantID,
		Status:     "todo",
	}

	if err := s.r.CreateWithFirstTask(series, task); err != nil {
		return nil, nil, err
	}
	return series, task, nil
}

// Update rewrites the series definition only. Previously materialized
// task rows are left untouched: editing a recurring series is not
// retroactive.
func (s *seriesSvc) Update(id string, uid string, f service.SeriesForm) (*entities.Series, error) {
	cur, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(f.Title) != "" {
		cur.Title = f.Title
	}
	if f.Pattern != "" {
		rule, err := s.buildRule(f)
		if err != nil {
			return nil, err
		}
		cur.RRule = rule
	}
	if f.StartTime != "" {
		// re-stamp in the series' own zone unless the form changes it
		if f.Timezone == "" {
			f.Timezone = cur.Timezone
		}
		start, tz, err := s.materializeStart(f)
		if err != nil {
			return nil, err
		}
		cur.DtstartLocal = start.Format(time.RFC3339)
		cur.DtstartUTC = start.UTC()
		cur.Timezone = tz
	}
	if f.PlantID != nil {
		cur.PlantID = f.PlantID
	}
	return cur, s.r.Update(cur)
}

func (s *seriesSvc) Delete(id string, uid string) error {
	if _, err := s.r.FindByID(id, uid); err != nil {
		return err
	}
	return s.r.DeleteCascadeFuture(id, s.now().UTC())
}

func (s *seriesSvc) Get(id string, uid string) (*entities.Series, error) {
	return s.r.FindByID(id, uid)
}
