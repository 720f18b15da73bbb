package serviceImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"growbro/entities"
	"growbro/pkg/harvest/repositoryImp"
	svc "growbro/pkg/harvest/service"
)

func newHarvestSvc(t *testing.T) svc.HarvestService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Harvest{}))
	return New(repositoryImp.New(db))
}

func sp(s string) *string   { return &s }
func fp(v float64) *float64 { return &v }

func TestCreateDefaultsStatus(t *testing.T) {
	s := newHarvestSvc(t)

	h := &entities.Harvest{PlantID: "p1", Date: "2024-09-20"}
	require.NoError(t, s.Create(h))
	assert.Equal(t, "planned", h.Status)

	require.Error(t, s.Create(&entities.Harvest{Date: "2024-09-20"}))
	require.Error(t, s.Create(&entities.Harvest{PlantID: "p1"}))
}

func TestUpdatePartialComputesDryRatio(t *testing.T) {
	s := newHarvestSvc(t)

	h := &entities.Harvest{PlantID: "p1", Date: "2024-09-20"}
	require.NoError(t, s.Create(h))

	got, err := s.UpdatePartial(h.HarvestID, svc.HarvestPatch{
		Status: sp("drying"), WetWeightG: fp(500),
	})
	require.NoError(t, err)
	assert.Equal(t, "drying", got.Status)
	assert.Nil(t, got.DryRatioPct, "no dry weight yet")

	got, err = s.UpdatePartial(h.HarvestID, svc.HarvestPatch{
		Status: sp("curing"), DryWeightG: fp(110),
	})
	require.NoError(t, err)
	require.NotNil(t, got.DryRatioPct)
	assert.InDelta(t, 22.0, *got.DryRatioPct, 0.001)
	require.NotNil(t, got.WetWeightG, "earlier patch survives")

	list, err := s.ListByPlant("p1")
	require.NoError(t, err)
	require.Len(t, list, 1)
}
