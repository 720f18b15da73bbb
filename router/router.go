package router

import (
	"github.com/labstack/echo/v4"

	"growbro/pkg/middleware"
)

func New(
	e *echo.Echo,
	plantCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
	},
	seriesCtrl interface {
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		Get(echo.Context) error
	},
	taskCtrl interface {
		Create(echo.Context) error
		Complete(echo.Context) error
		Calendar(echo.Context) error
	},
	measCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Chart(echo.Context) error
	},
	harvestCtrl interface {
		Create(echo.Context) error
		Patch(echo.Context) error
		List(echo.Context) error
	},
	invCtrl interface {
		ExportCSV(echo.Context) error
		ExportWorkbook(echo.Context) error
		Preview(echo.Context) error
		Import(echo.Context) error
	},
	stagePlan func(echo.Context) error,
	guidesCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/plants", plantCtrl.Create)
	api.GET("/plants", plantCtrl.List)
	api.GET("/plants/:id", plantCtrl.Get)

	api.POST("/plants/:id/measurements", measCtrl.Create)
	api.GET("/plants/:id/measurements", measCtrl.List)
	api.GET("/plants/:id/measurements/chart", measCtrl.Chart)

	api.POST("/plants/:id/harvests", harvestCtrl.Create)
	api.GET("/plants/:id/harvests", harvestCtrl.List)
	api.PATCH("/harvests/:id", harvestCtrl.Patch)

	api.POST("/plants/:id/stageplan", stagePlan)

	api.POST("/series", seriesCtrl.Create)
	api.GET("/series/:id", seriesCtrl.Get)
	api.PATCH("/series/:id", seriesCtrl.Update)
	api.DELETE("/series/:id", seriesCtrl.Delete)

	api.POST("/tasks", taskCtrl.Create)
	api.GET("/tasks", taskCtrl.Calendar)
	api.POST("/tasks/:id/complete", taskCtrl.Complete)

	api.GET("/inventory/export/:file", invCtrl.ExportCSV)
	api.GET("/inventory/export.xlsx", invCtrl.ExportWorkbook)
	api.POST("/inventory/import/preview", invCtrl.Preview)
	api.POST("/inventory/import", invCtrl.Import)

	api.POST("/guides/ingest", guidesCtrl.IngestText)
	api.POST("/guides/ingest/url", guidesCtrl.IngestURL)
	api.GET("/guides/search", guidesCtrl.Search)

	return e
}
