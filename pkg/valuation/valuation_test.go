package valuation

import (
	"math"
	"testing"
	"time"

	"gardenplanner/entities"
)

func price(v float64) *float64 { return &v }

func testCatalog() []entities.Plant {
	return []entities.Plant{
		{PlantID: "t1", Name: "Tomato", Category: entities.CategoryVegetable, YieldPerPlantLbs: 15, MarketPricePerLb: price(4)},
		{PlantID: "c1", Name: "Carrot", Category: entities.CategoryVegetable, YieldPerPlantLbs: 0.2, MarketPricePerLb: price(1.20)},
		{PlantID: "s1", Name: "Strawberry", Category: entities.CategoryFruit, YieldPerPlantLbs: 1, MarketPricePerLb: price(5.50)},
		{PlantID: "b1", Name: "Basil", Category: entities.CategoryHerb, YieldPerPlantLbs: 0.5, MarketPricePerLb: price(12)},
	}
}

func TestComputeTotalSavings(t *testing.T) {
	catalog := []entities.Plant{
		{PlantID: "t1", Name: "Tomato", YieldPerPlantLbs: 15, MarketPricePerLb: price(4)},
	}
	got := ComputeTotalSavings(catalog, map[string]int{"t1": 2})
	if got != 120 {
		t.Fatalf("savings = %v, want 120", got)
	}
}

func TestComputeTotalSavingsFallbackPrice(t *testing.T) {
	catalog := []entities.Plant{
		{PlantID: "t1", Name: "Tomato", YieldPerPlantLbs: 15},
	}
	got := ComputeTotalSavings(catalog, map[string]int{"t1": 2})
	if got != 135 {
		t.Fatalf("savings = %v, want 135 (2 x 15 x 4.50)", got)
	}
}

func TestComputeTotalSavingsNonNegativeAndMonotonic(t *testing.T) {
	catalog := testCatalog()
	sel := map[string]int{"t1": 1, "c1": 3}
	base := ComputeTotalSavings(catalog, sel)
	if base < 0 {
		t.Fatalf("savings negative: %v", base)
	}
	if empty := ComputeTotalSavings(catalog, map[string]int{}); empty != 0 {
		t.Fatalf("empty selection = %v, want 0", empty)
	}
	for id := range sel {
		bumped := map[string]int{}
		for k, v := range sel {
			bumped[k] = v
		}
		bumped[id]++
		if got := ComputeTotalSavings(catalog, bumped); got < base {
			t.Fatalf("increasing %s decreased savings: %v < %v", id, got, base)
		}
	}
}

func TestFilterCatalogIdentity(t *testing.T) {
	catalog := testCatalog()
	got := FilterCatalog(catalog, "", CategoryAll)
	if len(got) != len(catalog) {
		t.Fatalf("len = %d, want %d", len(got), len(catalog))
	}
	for i := range got {
		if got[i].PlantID != catalog[i].PlantID {
			t.Fatalf("order changed at %d: %s != %s", i, got[i].PlantID, catalog[i].PlantID)
		}
	}
}

func TestFilterCatalogPredicates(t *testing.T) {
	catalog := testCatalog()

	got := FilterCatalog(catalog, "toma", CategoryAll)
	if len(got) != 1 || got[0].Name != "Tomato" {
		t.Fatalf("substring match failed: %+v", got)
	}

	got = FilterCatalog(catalog, "", entities.CategoryHerb)
	if len(got) != 1 || got[0].Name != "Basil" {
		t.Fatalf("category match failed: %+v", got)
	}

	// both predicates must hold
	got = FilterCatalog(catalog, "tomato", entities.CategoryFruit)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}

	got = FilterCatalog(catalog, "TOMATO", entities.CategoryVegetable)
	if len(got) != 1 {
		t.Fatalf("case-insensitive match failed: %+v", got)
	}
}

func TestFilterCatalogEmptyCategoryReadsAsVegetable(t *testing.T) {
	catalog := []entities.Plant{{PlantID: "x", Name: "Mystery"}}
	if got := FilterCatalog(catalog, "", entities.CategoryVegetable); len(got) != 1 {
		t.Fatalf("uncategorized plant not treated as Vegetable")
	}
	if got := FilterCatalog(catalog, "", entities.CategoryFruit); len(got) != 0 {
		t.Fatalf("uncategorized plant matched Fruit")
	}
}

func historyOfSize(n int) []entities.ResolvedPlan {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	out := make([]entities.ResolvedPlan, 0, n)
	// newest first, like the ledger returns it
	for i := n - 1; i >= 0; i-- {
		out = append(out, entities.ResolvedPlan{
			PlanID:                string(rune('a' + i)),
			CreatedAt:             base.AddDate(0, 0, i),
			TotalEstimatedSavings: float64(i + 1),
		})
	}
	return out
}

func TestBuildSavingsTrendKeepsOldestSeven(t *testing.T) {
	points := BuildSavingsTrend(historyOfSize(10))
	if len(points) != 7 {
		t.Fatalf("len = %d, want 7", len(points))
	}
	// oldest to newest, starting at the very first plan
	for i, p := range points {
		if p.Savings != float64(i+1) {
			t.Fatalf("point %d savings = %v, want %v", i, p.Savings, float64(i+1))
		}
	}
	if points[0].Date != "3/1/2026" {
		t.Fatalf("date format = %q", points[0].Date)
	}
}

func TestBuildSavingsTrendShortHistory(t *testing.T) {
	points := BuildSavingsTrend(historyOfSize(3))
	if len(points) != 3 {
		t.Fatalf("len = %d, want 3", len(points))
	}
	if points[0].Savings != 1 || points[2].Savings != 3 {
		t.Fatalf("points not oldest-first: %+v", points)
	}
}

func TestAggregateStats(t *testing.T) {
	tomato := entities.Plant{PlantID: "t1", Name: "Tomato", YieldPerPlantLbs: 15}
	history := []entities.ResolvedPlan{
		{
			TotalEstimatedSavings: 120,
			Items: []entities.ResolvedItem{
				{Plant: &tomato, Quantity: 2},
				{Plant: nil, Quantity: 5}, // dangling ref contributes no pounds
			},
		},
		{
			TotalEstimatedSavings: 30.5,
			Items:                 []entities.ResolvedItem{{Plant: &tomato, Quantity: 1}},
		},
	}
	s := AggregateStats(history)
	if s.TotalPlans != 2 {
		t.Fatalf("plans = %d", s.TotalPlans)
	}
	if math.Abs(s.TotalSavings-150.5) > 1e-9 {
		t.Fatalf("savings = %v", s.TotalSavings)
	}
	if s.TotalPounds != 45 {
		t.Fatalf("pounds = %v, want 45", s.TotalPounds)
	}
}
