package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	svc "growbro/pkg/task/service"
)

type TaskCtrl struct{ svc svc.TaskService }

func New(s svc.TaskService) *TaskCtrl { return &TaskCtrl{s} }

func (h *TaskCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var f svc.TaskForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	t, err := h.svc.Create(uid, f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TaskCtrl) Complete(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	t, err := h.svc.Complete(uid, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Calendar(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	now := time.Now()
	from := now.AddDate(0, 0, -7)
	to := now.AddDate(0, 0, 30)
	if q := c.QueryParam("from"); q != "" {
		if d, err := time.Parse("2006-01-02", q); err == nil {
			from = d
		}
	}
	if q := c.QueryParam("to"); q != "" {
		if d, err := time.Parse("2006-01-02", q); err == nil {
			to = d.AddDate(0, 0, 1).Add(-time.Second)
		}
	}
	var plantID *string
	if q := c.QueryParam("plant_id"); q != "" {
		plantID = &q
	}

	out, err := h.svc.Calendar(uid, from, to, plantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
