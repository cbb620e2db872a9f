package valuation

import (
	"strings"

	"gardenplanner/entities"
)

// CategoryAll disables the category predicate in FilterCatalog.
const CategoryAll = "All"

// ComputeTotalSavings sums qty x yield x price over the catalog, using
// the market-price fallback for plants with no price. Quantities absent
// from the selection count as 0. No rounding here; rounding to cents is
// presentation only.
func ComputeTotalSavings(catalog []entities.Plant, selection map[string]int) float64 {
	total := 0.0
	for _, p := range catalog {
		qty := selection[p.PlantID]
		if qty <= 0 {
			continue
		}
		total += float64(qty) * p.YieldPerPlantLbs * p.PricePerLb()
	}
	return total
}

// FilterCatalog keeps plants whose name contains searchTerm
// (case-insensitive) and whose category matches. Both predicates must
// hold. The input is never mutated and order is preserved.
func FilterCatalog(catalog []entities.Plant, searchTerm, category string) []entities.Plant {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	out := make([]entities.Plant, 0, len(catalog))
	for _, p := range catalog {
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if category != CategoryAll && effectiveCategory(p) != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

func effectiveCategory(p entities.Plant) string {
	if p.Category == "" {
		return entities.CategoryVegetable
	}
	return p.Category
}

type TrendPoint struct {
	Date    string  `json:"date"`
	Savings float64 `json:"savings"`
}

// BuildSavingsTrend projects plan history (newest first, as the ledger
// returns it) to chartable points, oldest to newest. When the history
// holds more than 7 plans this keeps the 7 oldest, mirroring the
// original chart.
// TODO: decide whether the chart should show the 7 most recent plans
// instead; the current window never moves once 7 plans exist.
func BuildSavingsTrend(history []entities.ResolvedPlan) []TrendPoint {
	reversed := make([]entities.ResolvedPlan, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		reversed = append(reversed, history[i])
	}
	if len(reversed) > 7 {
		reversed = reversed[:7]
	}
	out := make([]TrendPoint, 0, len(reversed))
	for _, g := range reversed {
		out = append(out, TrendPoint{
			Date:    g.CreatedAt.Format("1/2/2006"),
			Savings: g.TotalEstimatedSavings,
		})
	}
	return out
}

type Stats struct {
	TotalSavings float64 `json:"totalSavings"`
	TotalPlans   int     `json:"totalPlans"`
	TotalPounds  float64 `json:"totalPounds"`
}

// AggregateStats totals the whole plan history. Items whose plant
// reference no longer resolves contribute nothing to the pound count.
func AggregateStats(history []entities.ResolvedPlan) Stats {
	s := Stats{TotalPlans: len(history)}
	for _, g := range history {
		s.TotalSavings += g.TotalEstimatedSavings
		for _, it := range g.Items {
			if it.Plant == nil {
				continue
			}
			s.TotalPounds += float64(it.Quantity) * it.Plant.YieldPerPlantLbs
		}
	}
	return s
}
