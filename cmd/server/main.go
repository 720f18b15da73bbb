package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"growbro/config"
	"growbro/database"
	"growbro/router"

	// Auth + Health
	authCtrlImp "growbro/pkg/auth/controllerImp"
	healthCtrlImp "growbro/pkg/health/controllerImp"

	// Plant
	plantCtrlImp "growbro/pkg/plant/controllerImp"
	plantRepoImp "growbro/pkg/plant/repositoryImp"
	plantSvcImp "growbro/pkg/plant/serviceImp"

	// Series + Task
	seriesCtrlImp "growbro/pkg/series/controllerImp"
	seriesRepoImp "growbro/pkg/series/repositoryImp"
	seriesSvcImp "growbro/pkg/series/serviceImp"
	taskCtrlImp "growbro/pkg/task/controllerImp"
	taskRepoImp "growbro/pkg/task/repositoryImp"
	taskSvcImp "growbro/pkg/task/serviceImp"

	// Measure
	measCtrlImp "growbro/pkg/measure/controllerImp"
	measRepoImp "growbro/pkg/measure/repositoryImp"
	measSvcImp "growbro/pkg/measure/serviceImp"

	// Harvest
	harvCtrlImp "growbro/pkg/harvest/controllerImp"
	harvRepoImp "growbro/pkg/harvest/repositoryImp"
	harvSvcImp "growbro/pkg/harvest/serviceImp"

	// Inventory
	invCtrlImp "growbro/pkg/inventory/controllerImp"
	invRepoImp "growbro/pkg/inventory/repositoryImp"
	invSvcImp "growbro/pkg/inventory/serviceImp"

	// Stage templates
	"growbro/pkg/stageplan"
	stageCtrlImp "growbro/pkg/stageplan/controllerImp"

	// Guides
	guidesCtrlImp "growbro/pkg/guides/controllerImp"
	guidesRepoImp "growbro/pkg/guides/repositoryImp"
	guidesSvcImp "growbro/pkg/guides/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Stage templates (optional; endpoint degrades when missing)
	eng, err := stageplan.LoadFromFile(cfg.StageConfigPath)
	if err != nil {
		log.Printf("stageplan warn: %v", err)
	}

	// 5) Repos
	plantRepo := plantRepoImp.New(db)
	seriesRepo := seriesRepoImp.New(db)
	taskRepo := taskRepoImp.New(db)
	measRepo := measRepoImp.New(db)
	harvRepo := harvRepoImp.New(db)
	invRepo := invRepoImp.New(db)
	guidesRepo := guidesRepoImp.New(db)

	// 6) Services
	plantSvc := plantSvcImp.NewPlantService(plantRepo)
	seriesSvc := seriesSvcImp.NewSeriesService(seriesRepo, cfg.Timezone)
	taskSvc := taskSvcImp.NewTaskService(taskRepo, seriesRepo, cfg.Timezone)
	measSvc := measSvcImp.NewMeasureService(measRepo)
	harvSvc := harvSvcImp.New(harvRepo)
	invSvc := invSvcImp.NewInventoryService(invRepo)
	guidesSvc := guidesSvcImp.New(guidesRepo)

	// 7) Controllers
	plantCtrl := plantCtrlImp.New(plantSvc)
	seriesCtrl := seriesCtrlImp.New(seriesSvc)
	taskCtrl := taskCtrlImp.New(taskSvc)
	measCtrl := measCtrlImp.New(measSvc)
	harvCtrl := harvCtrlImp.New(harvSvc)
	invCtrl := invCtrlImp.New(invSvc)
	stageCtrl := stageCtrlImp.New(eng, plantRepo, taskRepo, cfg.Timezone)
	guidesCtrl := guidesCtrlImp.New(guidesSvc, cfg.GuideDomains, cfg.GuideMaxBytes)
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	r := router.New(
		e,
		plantCtrl,
		seriesCtrl,
		taskCtrl,
		measCtrl,
		harvCtrl,
		invCtrl,
		stageCtrl.Generate,
		guidesCtrl,
		authCtrl,
		hCtrl,
	)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
