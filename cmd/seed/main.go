package main

import (
	"log"

	"gardenplanner/config"
	"gardenplanner/database"
	"gardenplanner/pkg/imagery"
)

func main() {
	cfg := config.Load()
	db := database.OpenSQLite(cfg.DBPath)

	plants := database.DefaultCatalog()
	if cfg.ImageLookupURL != "" {
		for i := range plants {
			src, err := imagery.Lookup(cfg.ImageLookupURL, plants[i].Name)
			if err != nil {
				log.Printf("imagery warn: %s: %v", plants[i].Name, err)
				continue
			}
			plants[i].Image = src
		}
	}

	if err := database.SeedPlants(db, plants); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("seeded %d plants into %s", len(plants), cfg.DBPath)
}
