package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	svc "growbro/pkg/inventory/service"
)

type InventoryCtrl struct{ svc svc.InventoryService }

func New(s svc.InventoryService) *InventoryCtrl { return &InventoryCtrl{s} }

// ExportCSV serves /inventory/export/:file with file one of items.csv,
// batches.csv, movements.csv.
func (h *InventoryCtrl) ExportCSV(c echo.Context) error {
	name := c.Param("file")
	table, err := svc.ParseTable(strings.TrimSuffix(name, ".csv"))
	if err != nil || !strings.HasSuffix(name, ".csv") {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown export file"})
	}
	b, err := h.svc.ExportCSV(table)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", b)
}

func (h *InventoryCtrl) ExportWorkbook(c echo.Context) error {
	b, err := h.svc.ExportWorkbook()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="inventory.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", b)
}

func (h *InventoryCtrl) Preview(c echo.Context) error {
	table, err := svc.ParseTable(c.QueryParam("table"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	p, err := h.svc.Preview(table, c.Request().Body)
	if err != nil {
		// size gate / malformed file; surfaced verbatim to the user
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *InventoryCtrl) Import(c echo.Context) error {
	table, err := svc.ParseTable(c.QueryParam("table"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	res, err := h.svc.Import(table, c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}
