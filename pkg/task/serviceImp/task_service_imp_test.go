package serviceImp

import (
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"growbro/entities"
	seriesRepoImp "growbro/pkg/series/repositoryImp"
	"growbro/pkg/task/repositoryImp"
	"growbro/pkg/task/service"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Series{}, &entities.Task{}))
	return db
}

func fixedNow() time.Time {
	loc, _ := time.LoadLocation("Europe/Berlin")
	return time.Date(2024, 3, 1, 12, 0, 0, 0, loc)
}

func newSvc(t *testing.T, db *gorm.DB) service.TaskService {
	t.Helper()
	return NewTaskServiceAt(repositoryImp.New(db), seriesRepoImp.New(db), "Europe/Berlin", fixedNow)
}

func seedSeries(t *testing.T, db *gorm.DB, id, uid, tz string) *entities.Series {
	t.Helper()
	loc, err := time.LoadLocation(tz)
	require.NoError(t, err)
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, loc)
	ser := &entities.Series{
		SeriesID:     id,
		UserID:       uid,
		Title:        "Water plants",
		RRule:        "FREQ=DAILY;INTERVAL=1",
		DtstartLocal: start.Format(time.RFC3339),
		DtstartUTC:   start.UTC(),
		Timezone:     tz,
	}
	require.NoError(t, db.Create(ser).Error)
	return ser
}

func TestCompletePersistedTaskIsIdempotent(t *testing.T) {
	db := testDB(t)
	svc := newSvc(t, db)

	created, err := svc.Create("u1", service.TaskForm{Title: "Check trichomes", DueDate: "2024-03-05", DueTime: "10:00"})
	require.NoError(t, err)
	assert.Equal(t, "todo", created.Status)

	done1, err := svc.Complete("u1", created.TaskID)
	require.NoError(t, err)
	assert.Equal(t, "done", done1.Status)
	require.NotNil(t, done1.CompletedAt)

	done2, err := svc.Complete("u1", created.TaskID)
	require.NoError(t, err)
	assert.Equal(t, done1.TaskID, done2.TaskID)
	require.NotNil(t, done2.CompletedAt)
	assert.True(t, done1.CompletedAt.Equal(*done2.CompletedAt), "second complete must not move the stamp")

	var n int64
	db.Model(&entities.Task{}).Count(&n)
	assert.EqualValues(t, 1, n)
}

func TestCompleteEphemeralResolvesZonedMidnight(t *testing.T) {
	db := testDB(t)
	svc := newSvc(t, db)
	seedSeries(t, db, "abc", "u1", "America/New_York")

	got, err := svc.Complete("u1", "series:abc:2024-03-10")
	require.NoError(t, err)

	loc, _ := time.LoadLocation("America/New_York")
	wantLocal := time.Date(2024, 3, 10, 0, 0, 0, 0, loc)

	assert.Equal(t, "done", got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(wantLocal))
	// midnight on the US spring-forward date is still EST, so 05:00Z
	assert.True(t, got.DueAtUTC.Equal(time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC)))
	assert.Equal(t, "series:abc:2024-03-10", got.Metadata["occurrence_key"])
	require.NotNil(t, got.SeriesID)
	assert.Equal(t, "abc", *got.SeriesID)
}

func TestCompleteEphemeralTwiceCreatesOneRow(t *testing.T) {
	db := testDB(t)
	svc := newSvc(t, db)
	seedSeries(t, db, "abc", "u1", "Europe/Berlin")

	first, err := svc.Complete("u1", "series:abc:2024-03-04")
	require.NoError(t, err)
	second, err := svc.Complete("u1", "series:abc:2024-03-04")
	require.NoError(t, err)

	assert.Equal(t, first.TaskID, second.TaskID)
	var n int64
	db.Model(&entities.Task{}).Count(&n)
	assert.EqualValues(t, 1, n)
}

func TestCompleteIsScopedToOwner(t *testing.T) {
	db := testDB(t)
	svc := newSvc(t, db)
	seedSeries(t, db, "abc", "u1", "Europe/Berlin")

	// another user cannot complete u1's occurrence
	_, err := svc.Complete("intruder", "series:abc:2024-03-04")
	require.Error(t, err)
	var n int64
	db.Model(&entities.Task{}).Count(&n)
	assert.EqualValues(t, 0, n, "no completion row for a foreign series")

	// nor a persisted task owned by someone else
	created, err := svc.Create("u1", service.TaskForm{Title: "Defoliate"})
	require.NoError(t, err)
	_, err = svc.Complete("intruder", created.TaskID)
	require.Error(t, err)

	var got entities.Task
	require.NoError(t, db.First(&got, "task_id = ?", created.TaskID).Error)
	assert.Equal(t, "todo", got.Status)
}

func TestCompleteRejectsMalformedOccurrenceIDs(t *testing.T) {
	db := testDB(t)
	svc := newSvc(t, db)

	// not a valid occurrence key and not a stored task id
	_, err := svc.Complete("u1", "series:abc:not-a-date")
	require.Error(t, err)

	_, err = svc.Complete("u1", "no-such-task")
	require.Error(t, err)
}

func TestCalendarMergesPersistedAndVirtual(t *testing.T) {
	db := testDB(t)
	svc := newSvc(t, db)
	ser := seedSeries(t, db, "abc", "u1", "Europe/Berlin")

	// materialized first occurrence, as series creation would leave it
	loc, _ := time.LoadLocation("Europe/Berlin")
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, loc)
	require.NoError(t, db.Create(&entities.Task{
		TaskID: "t-first", UserID: "u1", SeriesID: &ser.SeriesID,
		Title: ser.Title, DueAtLocal: start.Format(time.RFC3339),
		DueAtUTC: start.UTC(), Timezone: ser.Timezone, Status: "todo",
	}).Error)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	to := time.Date(2024, 3, 3, 23, 59, 59, 0, loc)

	out, err := svc.Calendar("u1", from, to, nil)
	require.NoError(t, err)
	require.Len(t, out, 3)

	// sorted ascending; first entry is the persisted row, not a duplicate
	assert.Equal(t, "t-first", out[0].TaskID)
	assert.Equal(t, "series:abc:2024-03-02", out[1].TaskID)
	assert.Equal(t, "series:abc:2024-03-03", out[2].TaskID)
	assert.Equal(t, true, out[1].Metadata["ephemeral"])
	assert.True(t, out[0].DueAtUTC.Before(out[1].DueAtUTC))
}

func TestCalendarReplacesVirtualAfterCompletion(t *testing.T) {
	db := testDB(t)
	svc := newSvc(t, db)
	seedSeries(t, db, "abc", "u1", "Europe/Berlin")

	_, err := svc.Complete("u1", "series:abc:2024-03-02")
	require.NoError(t, err)

	loc, _ := time.LoadLocation("Europe/Berlin")
	out, err := svc.Calendar("u1",
		time.Date(2024, 3, 1, 0, 0, 0, 0, loc),
		time.Date(2024, 3, 3, 23, 59, 59, 0, loc), nil)
	require.NoError(t, err)

	var statuses []string
	for _, x := range out {
		if key, _ := x.Metadata["occurrence_key"].(string); key == "series:abc:2024-03-02" {
			statuses = append(statuses, x.Status)
		}
	}
	require.Len(t, statuses, 1, "completed occurrence must appear exactly once: %v", taskIDs(out))
	assert.Equal(t, "done", statuses[0])
}

func taskIDs(ts []entities.Task) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = fmt.Sprintf("%s/%s", t.TaskID, t.Status)
	}
	return out
}
