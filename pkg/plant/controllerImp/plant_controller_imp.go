package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"growbro/entities"
	svc "growbro/pkg/plant/service"
)

type PlantCtrl struct{ svc svc.PlantService }

func New(s svc.PlantService) *PlantCtrl { return &PlantCtrl{s} }

type createReq struct {
	Name      string `json:"name"`
	Strain    string `json:"strain"`
	Stage     string `json:"stage"`
	Medium    string `json:"medium"`
	StartedAt string `json:"started_at"` // YYYY-MM-DD
}

func (h *PlantCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p := &entities.Plant{UserID: uid, Name: req.Name, Strain: req.Strain, Stage: req.Stage, Medium: req.Medium}
	if req.StartedAt != "" {
		if d, err := time.Parse("2006-01-02", req.StartedAt); err == nil {
			p.StartedAt = d
		}
	}
	out, err := h.svc.CreatePlant(p)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *PlantCtrl) Get(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	p, err := h.svc.GetPlantByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlantCtrl) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	out, err := h.svc.ListPlants(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
