package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gardenplanner/pkg/catalog/repository"
)

type CatalogCtrl struct{ repo repository.CatalogRepository }

func New(repo repository.CatalogRepository) *CatalogCtrl { return &CatalogCtrl{repo} }

func (h *CatalogCtrl) List(c echo.Context) error {
	plants, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, plants)
}
