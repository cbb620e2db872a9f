package serviceImp

import (
	"gorm.io/gorm"

	"gardenplanner/entities"
	catalogrepo "gardenplanner/pkg/catalog/repository"
	gardenrepo "gardenplanner/pkg/garden/repository"
	"gardenplanner/pkg/garden/service"
	"gardenplanner/pkg/valuation"
)

type GardenSvc struct {
	repo    gardenrepo.GardenRepository
	catalog catalogrepo.CatalogRepository
}

func NewGardenService(r gardenrepo.GardenRepository, c catalogrepo.CatalogRepository) service.GardenService {
	return &GardenSvc{repo: r, catalog: c}
}

func (s *GardenSvc) Create(userID string, items []entities.GardenPlanItem, total *float64) (*entities.ResolvedPlan, error) {
	kept := make([]entities.GardenPlanItem, 0, len(items))
	for _, it := range items {
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	if len(kept) == 0 {
		return nil, service.ErrEmptyPlan
	}
	if total == nil || *total < 0 {
		return nil, service.ErrInvalidTotal
	}

	g := &entities.GardenPlan{
		UserID:                userID,
		Items:                 kept,
		TotalEstimatedSavings: *total,
	}
	if err := s.repo.Create(g); err != nil {
		return nil, err
	}

	resolved, err := s.resolve([]entities.GardenPlan{*g})
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}

func (s *GardenSvc) List() ([]entities.ResolvedPlan, error) {
	plans, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	return s.resolve(plans)
}

func (s *GardenSvc) Delete(id string) error {
	n, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *GardenSvc) DeleteAll() (int64, error) { return s.repo.DeleteAll() }

func (s *GardenSvc) Stats() (valuation.Stats, error) {
	history, err := s.List()
	if err != nil {
		return valuation.Stats{}, err
	}
	return valuation.AggregateStats(history), nil
}

func (s *GardenSvc) Trend() ([]valuation.TrendPoint, error) {
	history, err := s.List()
	if err != nil {
		return nil, err
	}
	return valuation.BuildSavingsTrend(history), nil
}

func (s *GardenSvc) HarvestSchedule(id string) ([]service.HarvestEntry, error) {
	g, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resolved, err := s.resolve([]entities.GardenPlan{*g})
	if err != nil {
		return nil, err
	}
	out := make([]service.HarvestEntry, 0, len(resolved[0].Items))
	for _, it := range resolved[0].Items {
		if it.Plant == nil {
			continue
		}
		out = append(out, service.HarvestEntry{
			PlantName:       it.Plant.Name,
			Quantity:        it.Quantity,
			ExpectedHarvest: g.CreatedAt.AddDate(0, 0, it.Plant.DaysToHarvest),
		})
	}
	return out, nil
}

// resolve joins item plant refs against the catalog in one batch lookup.
// Dangling refs stay nil rather than failing the request.
func (s *GardenSvc) resolve(plans []entities.GardenPlan) ([]entities.ResolvedPlan, error) {
	seen := map[string]struct{}{}
	ids := make([]string, 0, 8)
	for _, g := range plans {
		for _, it := range g.Items {
			if _, ok := seen[it.PlantID]; !ok {
				seen[it.PlantID] = struct{}{}
				ids = append(ids, it.PlantID)
			}
		}
	}
	byID, err := s.catalog.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ResolvedPlan, 0, len(plans))
	for _, g := range plans {
		out = append(out, g.Resolve(byID))
	}
	return out, nil
}
