package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"growbro/entities"
	svc "growbro/pkg/harvest/service"
)

type HarvestCtrl struct{ svc svc.HarvestService }

func New(s svc.HarvestService) *HarvestCtrl { return &HarvestCtrl{s} }

type createReq struct {
	Date       string   `json:"date"` // YYYY-MM-DD
	Status     string   `json:"status"`
	WetWeightG *float64 `json:"wet_weight_g"`
	Notes      string   `json:"notes"`
}

func (h *HarvestCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	rec := &entities.Harvest{
		PlantID: c.Param("id"), Date: req.Date, Status: req.Status,
		WetWeightG: req.WetWeightG, Notes: req.Notes,
	}
	if err := h.svc.Create(rec); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *HarvestCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var p svc.HarvestPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	rec, err := h.svc.UpdatePartial(uint(id), p)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *HarvestCtrl) List(c echo.Context) error {
	out, err := h.svc.ListByPlant(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
