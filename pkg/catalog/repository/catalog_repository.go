package repository

import "gardenplanner/entities"

type CatalogRepository interface {
	List() ([]entities.Plant, error)
	FindByIDs(ids []string) (map[string]entities.Plant, error)
}
