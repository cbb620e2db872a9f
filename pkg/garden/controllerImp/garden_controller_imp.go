package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"gardenplanner/entities"
	"gardenplanner/pkg/export"
	"gardenplanner/pkg/garden/service"
)

type GardenCtrl struct{ svc service.GardenService }

func NewGardenCtrl(svc service.GardenService) *GardenCtrl { return &GardenCtrl{svc} }

type createReq struct {
	Items                 []entities.GardenPlanItem `json:"items"`
	TotalEstimatedSavings *float64                  `json:"totalEstimatedSavings"`
}

func (h *GardenCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "bad json"})
	}
	uid, _ := c.Get("uid").(string)
	plan, err := h.svc.Create(uid, req.Items, req.TotalEstimatedSavings)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPlan) || errors.Is(err, service.ErrInvalidTotal) {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error saving garden", "error": err.Error()})
	}
	return c.JSON(http.StatusCreated, plan)
}

func (h *GardenCtrl) List(c echo.Context) error {
	plans, err := h.svc.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error fetching history", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, plans)
}

func (h *GardenCtrl) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Garden plan not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error deleting plan", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Plan deleted successfully"})
}

func (h *GardenCtrl) DeleteAll(c echo.Context) error {
	n, err := h.svc.DeleteAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error deleting plans", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "All plans deleted", "count": n})
}

func (h *GardenCtrl) Stats(c echo.Context) error {
	stats, err := h.svc.Stats()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *GardenCtrl) Trend(c echo.Context) error {
	points, err := h.svc.Trend()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, points)
}

func (h *GardenCtrl) ExportCSV(c echo.Context) error {
	history, err := h.svc.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="garden-plans.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(export.BuildCSV(history)))
}

func (h *GardenCtrl) ExportXLSX(c echo.Context) error {
	history, err := h.svc.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	f, err := export.BuildXLSX(history)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	defer f.Close()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="garden-plans.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	_, err = f.WriteTo(c.Response())
	return err
}

func (h *GardenCtrl) Harvest(c echo.Context) error {
	id := c.Param("id")
	entries, err := h.svc.HarvestSchedule(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Garden plan not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, entries)
}
