package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	svc "growbro/pkg/series/service"
)

type SeriesCtrl struct{ svc svc.SeriesService }

func New(s svc.SeriesService) *SeriesCtrl { return &SeriesCtrl{s} }

func (h *SeriesCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var f svc.SeriesForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	series, first, err := h.svc.Create(uid, f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"series": series, "first_task": first})
}

func (h *SeriesCtrl) Update(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var f svc.SeriesForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	series, err := h.svc.Update(c.Param("id"), uid, f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, series)
}

func (h *SeriesCtrl) Delete(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if err := h.svc.Delete(c.Param("id"), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *SeriesCtrl) Get(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	series, err := h.svc.Get(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, series)
}
