package repositoryImp

import (
	"gorm.io/gorm"

	"gardenplanner/entities"
	"gardenplanner/pkg/garden/repository"
)

type gardenRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GardenRepository { return &gardenRepo{db} }

func (r *gardenRepo) Create(g *entities.GardenPlan) error { return r.db.Create(g).Error }

func (r *gardenRepo) All() ([]entities.GardenPlan, error) {
	var out []entities.GardenPlan
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gardenRepo) FindByID(id string) (*entities.GardenPlan, error) {
	var g entities.GardenPlan
	if err := r.db.Where("plan_id = ?", id).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gardenRepo) Delete(id string) (int64, error) {
	res := r.db.Where("plan_id = ?", id).Delete(&entities.GardenPlan{})
	return res.RowsAffected, res.Error
}

func (r *gardenRepo) DeleteAll() (int64, error) {
	res := r.db.Where("1 = 1").Delete(&entities.GardenPlan{})
	return res.RowsAffected, res.Error
}
