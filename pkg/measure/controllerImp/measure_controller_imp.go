package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"growbro/entities"
	svc "growbro/pkg/measure/service"
)

type MeasureCtrl struct{ svc svc.MeasureService }

func New(s svc.MeasureService) *MeasureCtrl { return &MeasureCtrl{s} }

type measReq struct {
	MeasuredAt  string   `json:"measured_at"` // RFC3339, defaults to now
	PH          *float64 `json:"ph"`
	ECMScm      *float64 `json:"ec_ms_cm"`
	TempC       *float64 `json:"temp_c"`
	HumidityPct *float64 `json:"humidity_pct"`
	Note        string   `json:"note"`
}

func (h *MeasureCtrl) Create(c echo.Context) error {
	var req measReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	at := time.Now()
	if req.MeasuredAt != "" {
		if t, err := time.Parse(time.RFC3339, req.MeasuredAt); err == nil {
			at = t
		}
	}
	m := &entities.Measurement{
		PlantID: c.Param("id"), MeasuredAt: at,
		PH: req.PH, ECMScm: req.ECMScm, TempC: req.TempC, HumidityPct: req.HumidityPct,
		Note: req.Note,
	}
	if err := h.svc.Create(m); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *MeasureCtrl) List(c echo.Context) error {
	out, err := h.svc.Recent(c.Param("id"), 60)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MeasureCtrl) Chart(c echo.Context) error {
	points, _ := strconv.Atoi(c.QueryParam("points"))
	out, err := h.svc.Chart(c.Param("id"), c.QueryParam("metric"), points)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
