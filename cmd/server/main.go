package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"gardenplanner/config"
	"gardenplanner/database"
	"gardenplanner/router"

	catalogCtrlImp "gardenplanner/pkg/catalog/controllerImp"
	catalogRepoImp "gardenplanner/pkg/catalog/repositoryImp"

	gardenCtrlImp "gardenplanner/pkg/garden/controllerImp"
	gardenRepoImp "gardenplanner/pkg/garden/repositoryImp"
	gardenSvc "gardenplanner/pkg/garden/serviceImp"

	healthCtrlImp "gardenplanner/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// 4) Repos/Services/Controllers
	cRepo := catalogRepoImp.New(db)
	gRepo := gardenRepoImp.New(db)
	cCtrl := catalogCtrlImp.New(cRepo)
	gSvc := gardenSvc.NewGardenService(gRepo, cRepo)
	gCtrl := gardenCtrlImp.NewGardenCtrl(gSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 5) Router
	r := router.New(e, cCtrl, gCtrl, hCtrl)

	// 6) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
