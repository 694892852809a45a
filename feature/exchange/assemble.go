package exchange

import (
	"sort"

	"collection-tracker/feature/collection/models"
)

// dedupeEdges drops later edges that repeat a set already seen. Duplicate
// membership rows upstream would otherwise produce the same edge twice.
func dedupeEdges(edges []Edge) []Edge {
	if len(edges) < 2 {
		return edges
	}
	seen := make(map[int]struct{}, len(edges))
	out := edges[:0]
	for _, e := range edges {
		if _, ok := seen[e.SetID]; ok {
			continue
		}
		seen[e.SetID] = struct{}{}
		out = append(out, e)
	}
	return out
}

// sortEdges orders edges by the set type's order, then the set's order, both
// ascending. Missing cross-references count as order 0. The sort is stable so
// ties keep their input order.
func sortEdges(edges []Edge, sets map[int]models.Set, setTypes map[int]models.SetType) {
	sort.SliceStable(edges, func(i, j int) bool {
		ti, si := edgeOrders(edges[i], sets, setTypes)
		tj, sj := edgeOrders(edges[j], sets, setTypes)
		if ti != tj {
			return ti < tj
		}
		return si < sj
	})
}

func edgeOrders(e Edge, sets map[int]models.Set, setTypes map[int]models.SetType) (typeOrder, setOrder int) {
	s, ok := sets[e.SetID]
	if !ok {
		return 0, 0
	}
	if t, ok := setTypes[s.SetTypeID]; ok {
		typeOrder = t.Order
	}
	return typeOrder, s.Order
}
