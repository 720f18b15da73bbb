// Package stageplan turns a CSV growth-stage template into concrete
// care tasks for a plant. The config file is operator-editable, so the
// header matching is deliberately forgiving about naming.
package stageplan

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"growbro/entities"
)

type Engine interface {
	BuildStages(p *entities.Plant) []Stage
	ExpandCare(p *entities.Plant, stages []Stage, loc *time.Location) []entities.Task
}

type Stage struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes"`

	waterIntervalDays int
	feedIntervalDays  int
}

type stageRow struct {
	Name      string
	Days      int
	WaterDays int
	FeedDays  int
	Notes     string
}

type rules struct {
	stageCfg []stageRow
}

func LoadFromFile(path string) (Engine, error) {
	r := &rules{}
	if err := r.loadStagesCSV(path); err != nil {
		return nil, err
	}
	if len(r.stageCfg) == 0 {
		return nil, errors.New("no stage config loaded")
	}
	return r, nil
}

func (r *rules) loadStagesCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\ufeff") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cStage := findAny("Stage", "stage", "phase")
	cDays := findAny("Days", "duration", "days_in_stage", "stagedays")
	cWater := findAny("WateringInterval", "water_interval", "watereverydays", "waterdays")
	cFeed := findAny("FeedingInterval", "feed_interval", "feedeverydays", "feeddays")
	cNote := findAny("Notes", "note", "remark", "tips")

	if cStage == -1 || cDays == -1 {
		return fmt.Errorf("StageConfig.csv missing required columns. Found headers: %v\nNeed at least: Stage, Days", head)
	}
	defaultWater, defaultFeed := 2, 7

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return rec[idx]
		}

		days, _ := strconv.Atoi(strings.TrimSpace(get(cDays)))
		if days <= 0 {
			continue // skip invalid rows
		}

		water := defaultWater
		if v, err := strconv.Atoi(strings.TrimSpace(get(cWater))); err == nil && v > 0 {
			water = v
		}
		feed := defaultFeed
		if v, err := strconv.Atoi(strings.TrimSpace(get(cFeed))); err == nil && v > 0 {
			feed = v
		}

		r.stageCfg = append(r.stageCfg, stageRow{
			Name:      strings.TrimSpace(get(cStage)),
			Days:      days,
			WaterDays: water,
			FeedDays:  feed,
			Notes:     strings.TrimSpace(get(cNote)),
		})
	}
	return nil
}

func (r *rules) BuildStages(p *entities.Plant) []Stage {
	var stages []Stage
	cur := p.StartedAt
	for _, row := range r.stageCfg {
		end := cur.AddDate(0, 0, row.Days)
		stages = append(stages, Stage{
			Name:              row.Name,
			StartDate:         cur.Format("2006-01-02"),
			EndDate:           end.Format("2006-01-02"),
			Notes:             row.Notes,
			waterIntervalDays: row.WaterDays,
			feedIntervalDays:  row.FeedDays,
		})
		cur = end
	}
	return stages
}

// ExpandCare walks each stage day by day and emits watering/feeding/
// check-up tasks at 09:00 in loc, dual-stamped from that one instant.
func (r *rules) ExpandCare(p *entities.Plant, stages []Stage, loc *time.Location) []entities.Task {
	if loc == nil {
		loc = time.UTC
	}
	mk := func(d time.Time, title, desc string) entities.Task {
		due := time.Date(d.Year(), d.Month(), d.Day(), 9, 0, 0, 0, loc)
		return entities.Task{
			TaskID:      uuid.NewString(),
			UserID:      p.UserID,
			Title:       title,
			Description: desc,
			DueAtLocal:  due.Format(time.RFC3339),
			DueAtUTC:    due.UTC(),
			Timezone:    loc.String(),
			PlantID:     &p.PlantID,
			Status:      "todo",
		}
	}

	var out []entities.Task
	for _, st := range stages {
		sd, _ := time.ParseInLocation("2006-01-02", st.StartDate, loc)
		ed, _ := time.ParseInLocation("2006-01-02", st.EndDate, loc)
		for d := sd; d.Before(ed); d = d.AddDate(0, 0, 1) {
			day := int(d.Sub(sd).Hours() / 24.0)
			if day%st.waterIntervalDays == 0 {
				out = append(out, mk(d, "Water "+p.Name, st.Name+" stage watering"))
			}
			if day%st.feedIntervalDays == 0 {
				out = append(out, mk(d, "Feed "+p.Name, st.Name+" stage feeding. "+st.Notes))
			}
			if day%2 == 0 {
				out = append(out, mk(d, "Check "+p.Name, "Log pH/EC and look over the canopy"))
			}
		}
	}
	return out
}
