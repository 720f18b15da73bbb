package serviceImp

import (
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"growbro/entities"
	"growbro/pkg/guides/repositoryImp"
)

func newGuidesSvc(t *testing.T) *Svc {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.GuideDoc{}, &entities.GuideChunk{}))
	return New(repositoryImp.New(db))
}

func TestChunkTextSplitsOnNewlineBoundaries(t *testing.T) {
	para := strings.Repeat("flush the medium before harvest\n", 60) // ~1900 runes
	chs := chunkText(para, 1000)
	require.Len(t, chs, 2)
	for _, c := range chs {
		assert.True(t, strings.HasSuffix(c, "\n"))
	}
	assert.Equal(t, para, strings.Join(chs, ""))

	assert.Empty(t, chunkText("", 1000))
	assert.Len(t, chunkText("short note", 1000), 1)
}

func TestUpsertAndSearch(t *testing.T) {
	svc := newGuidesSvc(t)

	doc, n, err := svc.UpsertDocument("Deficiencies", "nutrients",
		"Yellowing lower leaves usually mean nitrogen deficiency.\n"+
			"Purple stems can point to phosphorus issues.\n", "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, _, err = svc.UpsertDocument("Watering", "basics",
		"Water when the top inch of medium is dry.\n", "")
	require.NoError(t, err)

	hits, err := svc.Search("nitrogen deficiency", 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, doc.DocID, hits[0].DocID)
	assert.Contains(t, strings.ToLower(hits[0].Text), "nitrogen")

	meta, err := svc.DocsMeta([]uint{hits[0].DocID})
	require.NoError(t, err)
	assert.Equal(t, "Deficiencies", meta[hits[0].DocID].Title)

	// no hits and empty queries are not errors
	hits, err = svc.Search("autoclave", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
	hits, err = svc.Search("   ", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
