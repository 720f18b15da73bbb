package stageplan

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growbro/entities"
)

func writeCfg(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "StageConfig.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFileHeaderAliases(t *testing.T) {
	// operator file with spaced/cased headers still loads
	path := writeCfg(t, "Stage, Days , Watering Interval,Feeding Interval,Notes\n"+
		"Seedling,14,2,7,keep humidity high\n"+
		"Veg,28,2,3,\n"+
		"bogus,zero,,,\n")

	eng, err := LoadFromFile(path)
	require.NoError(t, err)

	p := &entities.Plant{PlantID: "p1", UserID: "u1", Name: "Northern Lights",
		StartedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	stages := eng.BuildStages(p)
	require.Len(t, stages, 2, "row with unparseable days is dropped")

	assert.Equal(t, "Seedling", stages[0].Name)
	assert.Equal(t, "2024-03-01", stages[0].StartDate)
	assert.Equal(t, "2024-03-15", stages[0].EndDate)
	assert.Equal(t, "2024-03-15", stages[1].StartDate)
	assert.Equal(t, "2024-04-12", stages[1].EndDate)
}

func TestLoadFromFileHandlesBOM(t *testing.T) {
	path := writeCfg(t, "\ufeffStage,Days\nSeedling,14\n")
	eng, err := LoadFromFile(path)
	require.NoError(t, err)

	p := &entities.Plant{PlantID: "p1", UserID: "u1", Name: "Kush",
		StartedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	require.Len(t, eng.BuildStages(p), 1)
}

func TestLoadFromFileRejectsMissingColumns(t *testing.T) {
	path := writeCfg(t, "Name,Length\nSeedling,14\n")
	_, err := LoadFromFile(path)
	require.Error(t, err)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestExpandCareStampsAndCadence(t *testing.T) {
	path := writeCfg(t, "Stage,Days,WateringInterval,FeedingInterval,Notes\n"+
		"Seedling,4,2,4,gentle feed\n")
	eng, err := LoadFromFile(path)
	require.NoError(t, err)

	loc, _ := time.LoadLocation("Europe/Berlin")
	p := &entities.Plant{PlantID: "p1", UserID: "u1", Name: "Gelato",
		StartedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, loc)}

	tasks := eng.ExpandCare(p, eng.BuildStages(p), loc)

	// 4 days: water on day 0,2; feed on day 0; check on day 0,2
	var water, feed, check int
	for _, tk := range tasks {
		switch tk.Title {
		case "Water Gelato":
			water++
		case "Feed Gelato":
			feed++
		case "Check Gelato":
			check++
		}

		local, err := time.Parse(time.RFC3339, tk.DueAtLocal)
		require.NoError(t, err)
		assert.True(t, local.UTC().Equal(tk.DueAtUTC), "both stamps come from one instant")
		assert.Equal(t, 9, local.Hour())
		assert.Equal(t, "Europe/Berlin", tk.Timezone)
		require.NotNil(t, tk.PlantID)
		assert.Equal(t, "p1", *tk.PlantID)
		assert.Equal(t, "todo", tk.Status)
	}
	assert.Equal(t, 2, water)
	assert.Equal(t, 1, feed)
	assert.Equal(t, 2, check)
}
