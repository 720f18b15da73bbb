package serviceImp

import (
	"sort"
	"strings"

	"growbro/entities"
	"growbro/pkg/guides/repository"
)

type Svc struct{ r repository.GuidesRepository }

func New(r repository.GuidesRepository) *Svc { return &Svc{r: r} }

func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	parts := []string{}
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) UpsertDocument(title, tags, text, sourceURL string) (*entities.GuideDoc, int, error) {
	d := &entities.GuideDoc{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return d, 0, nil
	}

	rows := make([]entities.GuideChunk, len(chs))
	for i := range chs {
		rows[i] = entities.GuideChunk{DocID: d.DocID, Ord: i, Text: chs[i]}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

// Search scores chunks by how many query terms they contain; crude but
// good enough for a few hundred guide chunks.
func (s *Svc) Search(query string, k int) ([]entities.GuideChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	terms := strings.Fields(strings.ToLower(q))

	type scored struct {
		ch entities.GuideChunk
		sc float64
	}
	scoredList := make([]scored, 0, len(chunks))
	for _, ch := range chunks {
		low := strings.ToLower(ch.Text)
		score := 0.0
		for _, t := range terms {
			if n := strings.Count(low, t); n > 0 {
				score += 1 + float64(n-1)*0.1
			}
		}
		if score > 0 {
			scoredList = append(scoredList, scored{ch: ch, sc: score})
		}
	}
	if len(scoredList) == 0 {
		return nil, nil
	}
	sort.SliceStable(scoredList, func(i, j int) bool { return scoredList[i].sc > scoredList[j].sc })

	if k > len(scoredList) {
		k = len(scoredList)
	}
	out := make([]entities.GuideChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, scoredList[i].ch)
	}
	return out, nil
}

func (s *Svc) DocsMeta(ids []uint) (map[uint]entities.GuideDoc, error) {
	return s.r.DocsByIDs(ids)
}
