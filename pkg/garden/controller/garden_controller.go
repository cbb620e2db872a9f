package controller

import "github.com/labstack/echo/v4"

type GardenController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Delete(c echo.Context) error
	DeleteAll(c echo.Context) error
	Stats(c echo.Context) error
	Trend(c echo.Context) error
	ExportCSV(c echo.Context) error
	ExportXLSX(c echo.Context) error
	Harvest(c echo.Context) error
}
