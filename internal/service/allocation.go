package service

import (
	"bytes"
	"sort"

	"parts-inventory-backend/internal/database/models"

	"github.com/google/uuid"
)

// Allocation is the computed split of one requirement line
type Allocation struct {
	ItemID    uuid.UUID `json:"item_id"`
	FromStock int       `json:"quantity_from_stock"`
	ToBuy     int       `json:"quantity_to_buy"`
}

// Allocate splits every item between stock and purchase. stock maps a component ID to the
// quantity available to this project; a component missing from the map has nothing available.
//
// Items sharing a component draw from one counter in ascending ID order. Custom lines are
// always bought. Fulfilled lines keep their stock share but buy nothing.
// The result has one entry per item, in input order. Allocate does not modify its inputs.
func Allocate(items []models.ProjectItem, stock map[uuid.UUID]int) []Allocation {
	result := make([]Allocation, len(items))
	groups := make(map[uuid.UUID][]int)

	for i := range items {
		item := &items[i]
		result[i].ItemID = item.ID
		if !item.HasComponent() {
			result[i].ToBuy = item.QuantityRequired
			continue
		}
		groups[*item.ComponentID] = append(groups[*item.ComponentID], i)
	}

	for componentID, idx := range groups {
		idx := idx // per-iteration copy (Go 1.22 loop semantics)
		sort.SliceStable(idx, func(a, b int) bool {
			return bytes.Compare(items[idx[a]].ID[:], items[idx[b]].ID[:]) < 0
		})

		available := stock[componentID]
		if available < 0 {
			available = 0
		}
		for _, i := range idx {
			required := items[i].QuantityRequired
			fromStock := min(required, available)
			available -= fromStock
			result[i].FromStock = fromStock
			result[i].ToBuy = required - fromStock
		}
	}

	for i := range items {
		if items[i].IsFulfilled {
			result[i].ToBuy = 0
		}
	}

	return result
}
