package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GuestUserID     = "guest_user" // until real auth exists
	DefaultPlanName = "My Dream Garden"
)

// GardenPlanItem references a Plant by id only. The reference is weak:
// the plant may be gone by the time the plan is read back.
type GardenPlanItem struct {
	PlantID  string `json:"plantId"`
	Quantity int    `json:"quantity"`
}

// GardenPlan is immutable once persisted; TotalEstimatedSavings is the
// client's snapshot at save time and is never recomputed server-side, so
// it can drift from current catalog prices.
type GardenPlan struct {
	PlanID                string           `gorm:"primaryKey" json:"_id"`
	UserID                string           `gorm:"index" json:"userId"`
	Name                  string           `json:"name"`
	Items                 []GardenPlanItem `gorm:"serializer:json" json:"items"`
	TotalEstimatedSavings float64          `json:"totalEstimatedSavings"`
	CreatedAt             time.Time        `json:"createdAt"`
}

func (g *GardenPlan) BeforeCreate(tx *gorm.DB) error {
	if g.PlanID == "" {
		g.PlanID = uuid.NewString()
	}
	if g.UserID == "" {
		g.UserID = GuestUserID
	}
	if g.Name == "" {
		g.Name = DefaultPlanName
	}
	return nil
}

// ResolvedItem is the display shape: plantId replaced by the full Plant,
// null when the reference dangles.
type ResolvedItem struct {
	Plant    *Plant `json:"plantId"`
	Quantity int    `json:"quantity"`
}

type ResolvedPlan struct {
	PlanID                string         `json:"_id"`
	UserID                string         `json:"userId"`
	Name                  string         `json:"name"`
	Items                 []ResolvedItem `json:"items"`
	TotalEstimatedSavings float64        `json:"totalEstimatedSavings"`
	CreatedAt             time.Time      `json:"createdAt"`
}

// Resolve joins the plan's items against the given plant index.
func (g *GardenPlan) Resolve(byID map[string]Plant) ResolvedPlan {
	items := make([]ResolvedItem, 0, len(g.Items))
	for _, it := range g.Items {
		ri := ResolvedItem{Quantity: it.Quantity}
		if p, ok := byID[it.PlantID]; ok {
			cp := p
			ri.Plant = &cp
		}
		items = append(items, ri)
	}
	return ResolvedPlan{
		PlanID:                g.PlanID,
		UserID:                g.UserID,
		Name:                  g.Name,
		Items:                 items,
		TotalEstimatedSavings: g.TotalEstimatedSavings,
		CreatedAt:             g.CreatedAt,
	}
}
