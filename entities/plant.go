package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plant categories the client enumerates. Anything else is stored as-is
// but filtered like a Vegetable.
const (
	CategoryVegetable = "Vegetable"
	CategoryFruit     = "Fruit"
	CategoryHerb      = "Herb"
)

// FallbackPricePerLb substitutes for a missing market price.
const FallbackPricePerLb = 4.50

type Plant struct {
	PlantID          string   `gorm:"primaryKey" json:"_id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"` // Vegetable|Fruit|Herb
	SpacingInches    float64  `json:"spacingInches"`
	YieldPerPlantLbs float64  `json:"yieldPerPlantLbs"`
	DaysToHarvest    int      `json:"daysToHarvest"`
	MarketPricePerLb *float64 `json:"marketPricePerLb,omitempty"`
	Image            string   `json:"image,omitempty"`
}

func (p *Plant) BeforeCreate(tx *gorm.DB) error {
	if p.PlantID == "" {
		p.PlantID = uuid.NewString()
	}
	if p.Category == "" {
		p.Category = CategoryVegetable
	}
	return nil
}

// PricePerLb is the market price with the fallback applied.
func (p *Plant) PricePerLb() float64 {
	if p.MarketPricePerLb != nil {
		return *p.MarketPricePerLb
	}
	return FallbackPricePerLb
}
