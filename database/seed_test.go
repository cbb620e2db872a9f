package database

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"gardenplanner/entities"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&entities.Plant{}, &entities.GardenPlan{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestSeedPlantsDoesNotDoubleUp(t *testing.T) {
	db := openTestDB(t)

	if err := SeedPlants(db, DefaultCatalog()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := SeedPlants(db, DefaultCatalog()); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	var count int64
	if err := db.Model(&entities.Plant{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if int(count) != len(DefaultCatalog()) {
		t.Fatalf("count = %d, want %d", count, len(DefaultCatalog()))
	}
}

func TestSeedAssignsIDsAndDefaults(t *testing.T) {
	db := openTestDB(t)
	if err := SeedPlants(db, DefaultCatalog()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var plants []entities.Plant
	if err := db.Find(&plants).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	for _, p := range plants {
		if p.PlantID == "" {
			t.Fatalf("plant %q has no id", p.Name)
		}
		if p.Category == "" {
			t.Fatalf("plant %q has no category", p.Name)
		}
	}
}
