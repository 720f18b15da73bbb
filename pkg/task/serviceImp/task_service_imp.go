package serviceImp

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"growbro/entities"
	"growbro/pkg/recurrence"
	seriesRepo "growbro/pkg/series/repository"
	repo "growbro/pkg/task/repository"
	"growbro/pkg/task/service"
)

type taskSvc struct {
	r         repo.TaskRepository
	series    seriesRepo.SeriesRepository
	defaultTZ string
	now       func() time.Time
}

func NewTaskService(r repo.TaskRepository, sr seriesRepo.SeriesRepository, defaultTZ string) service.TaskService {
	return &taskSvc{r: r, series: sr, defaultTZ: defaultTZ, now: time.Now}
}

func NewTaskServiceAt(r repo.TaskRepository, sr seriesRepo.SeriesRepository, defaultTZ string, now func() time.Time) service.TaskService {
	return &taskSvc{r: r, series: sr, defaultTZ: defaultTZ, now: now}
}

func (s *taskSvc) Create(uid string, f service.TaskForm) (*entities.Task, error) {
	if strings.TrimSpace(f.Title) == "" {
		return nil, errors.New("title is required")
	}
	tz := f.Timezone
	if tz == "" {
		tz = s.defaultTZ
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", tz, err)
	}

	ref := s.now().In(loc)
	if f.DueDate != "" {
		ref, err = time.ParseInLocation("2006-01-02", f.DueDate, loc)
		if err != nil {
			return nil, fmt.Errorf("bad due date %q: %w", f.DueDate, err)
		}
	}
	hhmm := f.DueTime
	if hhmm == "" {
		hhmm = "09:00"
	}
	st, err := time.Parse("15:04", hhmm)
	if err != nil {
		return nil, fmt.Errorf("bad due time %q (want HH:mm): %w", hhmm, err)
	}
	due := time.Date(ref.Year(), ref.Month(), ref.Day(), st.Hour(), st.Minute(), 0, 0, loc)

	t := &entities.Task{
		TaskID:      uuid.NewString(),
		UserID:      uid,
		Title:       f.Title,
		Description: f.Description,
		DueAtLocal:  due.Format(time.RFC3339),
		DueAtUTC:    due.UTC(),
		Timezone:    tz,
		PlantID:     f.PlantID,
		Status:      "todo",
	}
	if err := s.r.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// occurrenceKey ids look like series:<seriesId>:<localDate>.
func parseOccurrenceKey(id string) (seriesID, localDate string, ok bool) {
	parts := strings.SplitN(id, ":", 3)
	if len(parts) != 3 || parts[0] != "series" || parts[1] == "" {
		return "", "", false
	}
	if _, err := time.Parse("2006-01-02", parts[2]); err != nil {
		return "", "", false
	}
	return parts[1], parts[2], true
}

func (s *taskSvc) Complete(uid string, id string) (*entities.Task, error) {
	if sid, localDate, ok := parseOccurrenceKey(id); ok {
		return s.completeEphemeral(uid, id, sid, localDate)
	}

	t, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if t.UserID != uid {
		return nil, errors.New("task not found")
	}
	if t.Status == "done" {
		// already completed; no-op, not an error
		return t, nil
	}
	now := s.now()
	t.Status = "done"
	t.CompletedAt = &now
	return t, s.r.Update(t)
}

// completeEphemeral converts a virtual occurrence into a persisted
// completion row. The completion instant is the occurrence's local
// midnight resolved in the series zone (UTC when unset) — the exact
// occurrence being completed, never a "now" proxy.
func (s *taskSvc) completeEphemeral(uid, key, seriesID, localDate string) (*entities.Task, error) {
	if existing, err := s.r.FindByOccurrenceKey(uid, key); err == nil {
		return existing, nil
	}

	ser, err := s.series.FindByID(seriesID, uid)
	if err != nil {
		return nil, fmt.Errorf("series %s: %w", seriesID, err)
	}

	loc := time.UTC
	if ser.Timezone != "" {
		if l, err := time.LoadLocation(ser.Timezone); err == nil {
			loc = l
		}
	}
	day, err := time.ParseInLocation("2006-01-02", localDate, loc)
	if err != nil {
		return nil, fmt.Errorf("bad occurrence date %q: %w", localDate, err)
	}

	instant := day // local midnight of the occurrence
	t := &entities.Task{
		TaskID:      uuid.NewString(),
		UserID:      uid,
		SeriesID:    &ser.SeriesID,
		Title:       ser.Title,
		DueAtLocal:  instant.Format(time.RFC3339),
		DueAtUTC:    instant.UTC(),
		Timezone:    ser.Timezone,
		PlantID:     ser.PlantID,
		Status:      "done",
		CompletedAt: &instant,
		Metadata: datatypes.JSONMap{
			"ephemeral":      true,
			"occurrence_key": key,
		},
	}
	if err := s.r.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskSvc) Calendar(uid string, from, to time.Time, plantID *string) ([]entities.Task, error) {
	tasks, err := s.r.ListRange(uid, from, to, plantID)
	if err != nil {
		return nil, err
	}

	// occurrences already backed by a row, by series + local date
	seen := map[string]bool{}
	for _, t := range tasks {
		if key, ok := t.Metadata["occurrence_key"].(string); ok {
			seen[key] = true
			continue
		}
		if t.SeriesID != nil {
			if due, err := time.Parse(time.RFC3339, t.DueAtLocal); err == nil {
				seen[fmt.Sprintf("series:%s:%s", *t.SeriesID, due.Format("2006-01-02"))] = true
			}
		}
	}

	all, err := s.series.ListByUser(uid)
	if err != nil {
		return nil, err
	}
	for i := range all {
		ser := &all[i]
		if plantID != nil && (ser.PlantID == nil || *ser.PlantID != *plantID) {
			continue
		}
		loc := time.UTC
		if ser.Timezone != "" {
			if l, err := time.LoadLocation(ser.Timezone); err == nil {
				loc = l
			}
		}
		dtstart, err := time.Parse(time.RFC3339, ser.DtstartLocal)
		if err != nil {
			continue
		}
		occ, err := recurrence.Occurrences(ser.RRule, dtstart.In(loc), from, to)
		if err != nil {
			continue
		}
		for _, o := range occ {
			local := o.In(loc)
			key := fmt.Sprintf("series:%s:%s", ser.SeriesID, local.Format("2006-01-02"))
			if seen[key] {
				continue
			}
			tasks = append(tasks, entities.Task{
				TaskID:     key,
				UserID:     uid,
				SeriesID:   &ser.SeriesID,
				Title:      ser.Title,
				DueAtLocal: local.Format(time.RFC3339),
				DueAtUTC:   o.UTC(),
				Timezone:   ser.Timezone,
				PlantID:    ser.PlantID,
				Status:     "todo",
				Metadata:   datatypes.JSONMap{"ephemeral": true},
			})
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].DueAtUTC.Before(tasks[j].DueAtUTC) })
	return tasks, nil
}
