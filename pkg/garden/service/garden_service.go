package service

import (
	"errors"
	"time"

	"gardenplanner/entities"
	"gardenplanner/pkg/valuation"
)

// Validation failures on create; controllers map these to 400.
var (
	ErrEmptyPlan    = errors.New("garden is empty")
	ErrInvalidTotal = errors.New("totalEstimatedSavings must be a non-negative number")
)

type HarvestEntry struct {
	PlantName       string    `json:"plantName"`
	Quantity        int       `json:"quantity"`
	ExpectedHarvest time.Time `json:"expectedHarvest"`
}

type GardenService interface {
	// Create persists a plan for the given owner. Zero-quantity items are
	// dropped; a plan with no remaining items is rejected. The savings
	// total is stored exactly as submitted.
	Create(userID string, items []entities.GardenPlanItem, total *float64) (*entities.ResolvedPlan, error)
	// List returns every plan, newest first, with plant refs resolved.
	List() ([]entities.ResolvedPlan, error)
	// Delete removes one plan; gorm.ErrRecordNotFound when the id is unknown.
	Delete(id string) error
	// DeleteAll removes every plan and reports how many went away.
	DeleteAll() (int64, error)
	Stats() (valuation.Stats, error)
	Trend() ([]valuation.TrendPoint, error)
	// HarvestSchedule projects expected harvest dates for one plan's items.
	HarvestSchedule(id string) ([]HarvestEntry, error)
}
