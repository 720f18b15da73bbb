package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	plantRepo "growbro/pkg/plant/repository"
	"growbro/pkg/stageplan"
	taskRepo "growbro/pkg/task/repository"
)

type StagePlanCtrl struct {
	eng       stageplan.Engine
	plants    plantRepo.PlantRepository
	tasks     taskRepo.TaskRepository
	defaultTZ string
}

func New(eng stageplan.Engine, p plantRepo.PlantRepository, t taskRepo.TaskRepository, defaultTZ string) *StagePlanCtrl {
	return &StagePlanCtrl{eng: eng, plants: p, tasks: t, defaultTZ: defaultTZ}
}

// Generate expands the stage template for one plant into persisted
// care tasks and returns the stage layout.
func (h *StagePlanCtrl) Generate(c echo.Context) error {
	if h.eng == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "stage config not loaded"})
	}
	uid, _ := c.Get("uid").(string)
	p, err := h.plants.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}

	var body struct {
		Timezone string `json:"timezone"`
	}
	_ = c.Bind(&body)
	tz := body.Timezone
	if tz == "" {
		tz = h.defaultTZ
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown timezone " + tz})
	}

	stages := h.eng.BuildStages(p)
	tasks := h.eng.ExpandCare(p, stages, loc)
	if err := h.tasks.BulkInsert(tasks); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"stages": stages, "tasks_created": len(tasks)})
}
