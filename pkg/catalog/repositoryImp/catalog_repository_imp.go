package repositoryImp

import (
	"gorm.io/gorm"

	"gardenplanner/entities"
	"gardenplanner/pkg/catalog/repository"
)

type catalogRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CatalogRepository { return &catalogRepo{db} }

func (r *catalogRepo) List() ([]entities.Plant, error) {
	var out []entities.Plant
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) FindByIDs(ids []string) (map[string]entities.Plant, error) {
	out := map[string]entities.Plant{}
	if len(ids) == 0 {
		return out, nil
	}
	var plants []entities.Plant
	if err := r.db.Where("plant_id IN ?", ids).Find(&plants).Error; err != nil {
		return nil, err
	}
	for _, p := range plants {
		out[p.PlantID] = p
	}
	return out, nil
}
