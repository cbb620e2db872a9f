package database

import (
	"gorm.io/gorm"

	"gardenplanner/entities"
)

func price(v float64) *float64 { return &v }

// DefaultCatalog is the stock plant list installed by the seeder.
func DefaultCatalog() []entities.Plant {
	return []entities.Plant{
		{Name: "Tomato", Category: entities.CategoryVegetable, SpacingInches: 18, YieldPerPlantLbs: 15, DaysToHarvest: 80, MarketPricePerLb: price(4.00)},
		{Name: "Carrot", Category: entities.CategoryVegetable, SpacingInches: 3, YieldPerPlantLbs: 0.2, DaysToHarvest: 70, MarketPricePerLb: price(1.20)},
		{Name: "Cucumber", Category: entities.CategoryVegetable, SpacingInches: 12, YieldPerPlantLbs: 10, DaysToHarvest: 60, MarketPricePerLb: price(1.50)},
		{Name: "Bell Pepper", Category: entities.CategoryVegetable, SpacingInches: 18, YieldPerPlantLbs: 5, DaysToHarvest: 75, MarketPricePerLb: price(2.80)},
		{Name: "Zucchini", Category: entities.CategoryVegetable, SpacingInches: 24, YieldPerPlantLbs: 8, DaysToHarvest: 55, MarketPricePerLb: price(1.80)},
		{Name: "Strawberry", Category: entities.CategoryFruit, SpacingInches: 12, YieldPerPlantLbs: 1, DaysToHarvest: 90, MarketPricePerLb: price(5.50)},
		{Name: "Blueberry", Category: entities.CategoryFruit, SpacingInches: 36, YieldPerPlantLbs: 4, DaysToHarvest: 120, MarketPricePerLb: price(6.00)},
		{Name: "Basil", Category: entities.CategoryHerb, SpacingInches: 10, YieldPerPlantLbs: 0.5, DaysToHarvest: 30, MarketPricePerLb: price(12.00)},
		{Name: "Mint", Category: entities.CategoryHerb, SpacingInches: 18, YieldPerPlantLbs: 0.5, DaysToHarvest: 40},
	}
}

// SeedPlants clears the catalog and reinstalls the given plants so a
// re-run does not double up.
func SeedPlants(db *gorm.DB, plants []entities.Plant) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.Plant{}).Error; err != nil {
			return err
		}
		if len(plants) == 0 {
			return nil
		}
		return tx.Create(&plants).Error
	})
}
