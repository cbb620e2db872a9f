package repository

import "gardenplanner/entities"

type GardenRepository interface {
	Create(g *entities.GardenPlan) error
	// All returns every plan, newest first.
	All() ([]entities.GardenPlan, error)
	FindByID(id string) (*entities.GardenPlan, error)
	// Delete reports how many rows went away (0 or 1).
	Delete(id string) (int64, error)
	DeleteAll() (int64, error)
}
