package router

import (
	"github.com/labstack/echo/v4"

	"gardenplanner/pkg/middleware"
)

func New(
	e *echo.Echo,
	catalogCtrl interface{ List(echo.Context) error },
	gardenCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Delete(echo.Context) error
		DeleteAll(echo.Context) error
		Stats(echo.Context) error
		Trend(echo.Context) error
		ExportCSV(echo.Context) error
		ExportXLSX(echo.Context) error
		Harvest(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.Owner())
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")
	api.GET("/plants", catalogCtrl.List)

	g := api.Group("/gardens")
	g.GET("", gardenCtrl.List)
	g.POST("", gardenCtrl.Create)
	g.DELETE("", gardenCtrl.DeleteAll)
	g.GET("/stats", gardenCtrl.Stats)
	g.GET("/trend", gardenCtrl.Trend)
	g.GET("/export.csv", gardenCtrl.ExportCSV)
	g.GET("/export.xlsx", gardenCtrl.ExportXLSX)
	g.DELETE("/:id", gardenCtrl.Delete)
	g.GET("/:id/harvest", gardenCtrl.Harvest)
	return e
}
