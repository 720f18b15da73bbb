package serviceImp

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"growbro/entities"
	"growbro/pkg/measure/repositoryImp"
	"growbro/pkg/measure/service"
)

func fp(v float64) *float64 { return &v }

func newMeasureSvc(t *testing.T) service.MeasureService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Measurement{}))
	return NewMeasureService(repositoryImp.New(db))
}

func TestCreateValidatesReadings(t *testing.T) {
	svc := newMeasureSvc(t)

	err := svc.Create(&entities.Measurement{PlantID: "p1"})
	require.Error(t, err, "empty measurement must be rejected")

	err = svc.Create(&entities.Measurement{PH: fp(6.1)})
	require.Error(t, err, "plant_id is mandatory")

	err = svc.Create(&entities.Measurement{PlantID: "p1", PH: fp(15)})
	require.Error(t, err, "ph outside 0..14")

	err = svc.Create(&entities.Measurement{PlantID: "p1", PH: fp(6.1), MeasuredAt: time.Now()})
	require.NoError(t, err)
}

func TestChartPicksMetricAndDownsamples(t *testing.T) {
	svc := newMeasureSvc(t)
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 300; i++ {
		require.NoError(t, svc.Create(&entities.Measurement{
			PlantID:    "p1",
			MeasuredAt: base.Add(time.Duration(i) * time.Hour),
			PH:         fp(6.0 + float64(i%10)/100),
			TempC:      fp(24.5),
		}))
	}

	out, err := svc.Chart("p1", "ph", 50)
	require.NoError(t, err)
	assert.Len(t, out, 50)

	// temp series exists too, picked independently
	out, err = svc.Chart("p1", "temp", 0)
	require.NoError(t, err)
	assert.Len(t, out, 200, "default cap")

	// humidity never recorded
	out, err = svc.Chart("p1", "humidity", 50)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = svc.Chart("p1", "voltage", 50)
	require.Error(t, err)
}
