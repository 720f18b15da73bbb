package serviceImp

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"growbro/entities"
	seriesRepoImp "growbro/pkg/series/repositoryImp"
	"growbro/pkg/series/service"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Series{}, &entities.Task{}))
	return db
}

// clock pinned to 2024-03-01 12:00 Berlin
func fixedNow() time.Time {
	loc, _ := time.LoadLocation("Europe/Berlin")
	return time.Date(2024, 3, 1, 12, 0, 0, 0, loc)
}

func newSvc(t *testing.T, db *gorm.DB) service.SeriesService {
	t.Helper()
	return NewSeriesServiceAt(seriesRepoImp.New(db), "Europe/Berlin", fixedNow)
}

func TestCreateDualStampConsistency(t *testing.T) {
	db := testDB(t)
	svc := newSvc(t, db)

	ser, first, err := svc.Create("u1", service.SeriesForm{
		Title:         "Water plants",
		Pattern:       "daily",
		Interval:      1,
		StartTime:     "09:00",
		ReferenceDate: "2024-03-10",
		Timezone:      "America/New_York",
	})
	require.NoError(t, err)
	require.NotNil(t, first)

	// local stamp re-parsed and converted must hit the UTC stamp exactly
	local, err := time.Parse(time.RFC3339, ser.DtstartLocal)
	require.NoError(t, err)
	assert.True(t, local.UTC().Equal(ser.DtstartUTC), "local %s vs utc %s", ser.DtstartLocal, ser.DtstartUTC)

	// 2024-03-10 09:00 in New York is EDT (DST starts 02:00 that day)
	assert.True(t, ser.DtstartUTC.Equal(time.Date(2024, 3, 10, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, "America/New_York", ser.Timezone)
	assert.Equal(t, "FREQ=DAILY;INTERVAL=1", ser.RRule)

	// first task carries the series stamps
	assert.Equal(t, ser.DtstartLocal, first.DueAtLocal)
	assert.True(t, first.DueAtUTC.Equal(ser.DtstartUTC))
	require.NotNil(t, first.SeriesID)
	assert.Equal(t, ser.SeriesID, *first.SeriesID)
	assert.Equal(t, "todo", first.Status)
}

func TestCreateDefaultsReferenceDateToToday(t *testing.T) {
	db := testDB(t)
	svc := newSvc(t, db)

	ser, _, err := svc.Create("u1", service.SeriesForm{
		Title: "Feed", Pattern: "weekly", Interval: 1,
		Weekdays: []string{"MO", "FR"}, StartTime: "18:30",
	})
	require.NoError(t, err)

	loc, _ := time.LoadLocation("Europe/Berlin")
	want := time.Date(2024, 3, 1, 18, 30, 0, 0, loc)
	assert.True(t, ser.DtstartUTC.Equal(want.UTC()))
	assert.Equal(t, "FREQ=WEEKLY;INTERVAL=1;BYDAY=MO,FR", ser.RRule)
}

func TestCreateValidation(t *testing.T) {
	db := testDB(t)
	svc := newSvc(t, db)

	_, _, err := svc.Create("u1", service.SeriesForm{Title: "x", Pattern: "monthly", Interval: 1, StartTime: "09:00"})
	require.Error(t, err)

	_, _, err = svc.Create("u1", service.SeriesForm{Title: "x", Pattern: "daily", Interval: 0, StartTime: "09:00"})
	require.Error(t, err)

	_, _, err = svc.Create("u1", service.SeriesForm{Title: "x", Pattern: "weekly", Interval: 1, StartTime: "09:00"})
	require.Error(t, err, "weekly without weekdays must fail")

	_, _, err = svc.Create("u1", service.SeriesForm{Title: "", Pattern: "daily", Interval: 1, StartTime: "09:00"})
	require.Error(t, err)

	_, _, err = svc.Create("u1", service.SeriesForm{Title: "x", Pattern: "daily", Interval: 1, StartTime: "9 o'clock"})
	require.Error(t, err)

	_, _, err = svc.Create("u1", service.SeriesForm{Title: "x", Pattern: "daily", Interval: 1, StartTime: "09:00", Timezone: "Mars/Olympus"})
	require.Error(t, err)
}

func TestUpdateDoesNotTouchExistingTasks(t *testing.T) {
	db := testDB(t)
	svc := newSvc(t, db)

	ser, first, err := svc.Create("u1", service.SeriesForm{
		Title: "Water plants", Pattern: "daily", Interval: 1,
		StartTime: "09:00", ReferenceDate: "2024-03-05",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ser.SeriesID, "u1", service.SeriesForm{Title: "Water and check runoff"})
	require.NoError(t, err)
	assert.Equal(t, "Water and check runoff", updated.Title)

	// previously materialized row keeps its original title and stamps
	var got entities.Task
	require.NoError(t, db.First(&got, "task_id = ?", first.TaskID).Error)
	assert.Equal(t, "Water plants", got.Title)
	assert.Equal(t, first.DueAtLocal, got.DueAtLocal)
}

func TestUpdateStartTimeKeepsStoredTimezone(t *testing.T) {
	db := testDB(t)
	svc := newSvc(t, db) // server default is Europe/Berlin

	ser, _, err := svc.Create("u1", service.SeriesForm{
		Title: "Water plants", Pattern: "daily", Interval: 1,
		StartTime: "09:00", ReferenceDate: "2024-03-20",
		Timezone: "America/New_York",
	})
	require.NoError(t, err)

	// no timezone in the patch: the series zone must survive
	updated, err := svc.Update(ser.SeriesID, "u1", service.SeriesForm{
		StartTime: "10:30", ReferenceDate: "2024-03-20",
	})
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", updated.Timezone)

	// 10:30 EDT on 2024-03-20 is 14:30Z, not the Berlin 09:30Z
	assert.True(t, updated.DtstartUTC.Equal(time.Date(2024, 3, 20, 14, 30, 0, 0, time.UTC)))
	local, err := time.Parse(time.RFC3339, updated.DtstartLocal)
	require.NoError(t, err)
	assert.True(t, local.UTC().Equal(updated.DtstartUTC))
}

func TestDeleteCascadesToFutureTasksOnly(t *testing.T) {
	db := testDB(t)
	svc := newSvc(t, db)

	ser, first, err := svc.Create("u1", service.SeriesForm{
		Title: "Flush", Pattern: "daily", Interval: 1,
		StartTime: "09:00", ReferenceDate: "2024-03-10",
	})
	require.NoError(t, err)

	past := entities.Task{
		TaskID: "past-1", UserID: "u1", SeriesID: &ser.SeriesID,
		Title: "Flush", DueAtLocal: "2024-02-01T09:00:00+01:00",
		DueAtUTC: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
		Timezone: "Europe/Berlin", Status: "done",
	}
	require.NoError(t, db.Create(&past).Error)

	require.NoError(t, svc.Delete(ser.SeriesID, "u1"))

	var n int64
	db.Model(&entities.Task{}).Where("task_id = ?", first.TaskID).Count(&n)
	assert.EqualValues(t, 0, n, "future occurrence must be removed")

	var kept entities.Task
	require.NoError(t, db.First(&kept, "task_id = ?", "past-1").Error)
	assert.Nil(t, kept.SeriesID, "past occurrence survives, detached")

	db.Model(&entities.Series{}).Where("series_id = ?", ser.SeriesID).Count(&n)
	assert.EqualValues(t, 0, n)
}

func TestGetScopedToUser(t *testing.T) {
	db := testDB(t)
	svc := newSvc(t, db)

	ser, _, err := svc.Create("u1", service.SeriesForm{
		Title: "Feed", Pattern: "daily", Interval: 2, StartTime: "08:00",
	})
	require.NoError(t, err)

	_, err = svc.Get(ser.SeriesID, "someone-else")
	require.Error(t, err)

	got, err := svc.Get(ser.SeriesID, "u1")
	require.NoError(t, err)
	assert.Equal(t, ser.SeriesID, got.SeriesID)
}
