package export

import (
	"fmt"
	"strconv"
	"strings"

	"gardenplanner/entities"
)

const csvHeader = "Date,Plants,Total Yield (lbs),Total Savings ($)"

// UnresolvedPlantName stands in for items whose plant reference no
// longer resolves against the catalog.
const UnresolvedPlantName = "Plant"

// BuildCSV renders plan history as the downloadable CSV document: one
// row per plan, the Plants cell always quoted and pipe-separated.
func BuildCSV(history []entities.ResolvedPlan) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\n")
	for _, g := range history {
		b.WriteString(fmt.Sprintf("%s,\"%s\",%s,%.2f\n",
			g.CreatedAt.Format("1/2/2006"),
			strings.ReplaceAll(plantsCell(g), `"`, `""`),
			strconv.FormatFloat(totalYieldLbs(g), 'f', -1, 64),
			g.TotalEstimatedSavings,
		))
	}
	return b.String()
}

func plantsCell(g entities.ResolvedPlan) string {
	parts := make([]string, 0, len(g.Items))
	for _, it := range g.Items {
		name := UnresolvedPlantName
		if it.Plant != nil {
			name = it.Plant.Name
		}
		parts = append(parts, fmt.Sprintf("%dx %s", it.Quantity, name))
	}
	return strings.Join(parts, " | ")
}

func totalYieldLbs(g entities.ResolvedPlan) float64 {
	total := 0.0
	for _, it := range g.Items {
		if it.Plant == nil {
			continue
		}
		total += float64(it.Quantity) * it.Plant.YieldPerPlantLbs
	}
	return total
}
