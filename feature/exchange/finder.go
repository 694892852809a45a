package exchange

import (
	"context"

	"collection-tracker/feature/collection/models"
)

// Finder runs the exchange scans against a Source snapshot. It holds no state
// between calls; concurrent invocations are safe.
type Finder struct {
	src Source
}

// NewFinder creates a finder over the given read source.
func NewFinder(src Source) *Finder {
	return &Finder{src: src}
}

// Global scans all users and all sets for exchange potential with the
// requesting user. Groups come back in user scan order; edges within a group
// are deduplicated by set and sorted by (set type order, set order).
func (f *Finder) Global(ctx context.Context, userID int) ([]Group, error) {
	users, err := f.src.Users(ctx)
	if err != nil {
		return nil, err
	}
	sets, err := f.src.Sets(ctx)
	if err != nil {
		return nil, err
	}
	setTypes, err := f.src.SetTypes(ctx)
	if err != nil {
		return nil, err
	}
	memberships, err := f.src.Memberships(ctx)
	if err != nil {
		return nil, err
	}
	items, err := f.src.Items(ctx)
	if err != nil {
		return nil, err
	}

	idx := BuildIndex(items)

	setsByID := make(map[int]models.Set, len(sets))
	for _, s := range sets {
		setsByID[s.ID] = s
	}
	typesByID := make(map[int]models.SetType, len(setTypes))
	for _, t := range setTypes {
		typesByID[t.ID] = t
	}

	setsByUser := make(map[int][]int)
	for _, m := range memberships {
		setsByUser[m.UserID] = append(setsByUser[m.UserID], m.SetID)
	}
	currentSetIDs := setsByUser[userID]

	var groups []Group
	for _, u := range users {
		if u.ID == userID {
			continue
		}

		otherSetIDs := make(map[int]struct{}, len(setsByUser[u.ID]))
		for _, id := range setsByUser[u.ID] {
			otherSetIDs[id] = struct{}{}
		}

		var edges []Edge
		for _, setID := range currentSetIDs {
			if _, shared := otherSetIDs[setID]; !shared {
				continue
			}
			invA := idx.Inventory(userID, setID)
			invB := idx.Inventory(u.ID, setID)
			if len(invA) == 0 || len(invB) == 0 {
				continue
			}
			aGives, bGives := Match(invA, invB)
			if len(aGives) == 0 && len(bGives) == 0 {
				continue
			}
			edges = append(edges, Edge{
				SetID:        setID,
				SetName:      setsByID[setID].Name,
				UserACanGive: aGives,
				UserBCanGive: bGives,
			})
		}
		if len(edges) == 0 {
			continue
		}

		edges = dedupeEdges(edges)
		sortEdges(edges, setsByID, typesByID)

		groups = append(groups, Group{
			User: UserSummary{
				UserID: u.ID,
				Name:   u.Name,
				Email:  u.Email,
				Logo:   u.Logo,
			},
			Edges: edges,
		})
	}
	return groups, nil
}

// ForSet scans the holders of one set for exchange potential with the
// requesting user. An absent set yields an empty result. Membership rows
// whose denormalized classification disagrees with the set are excluded as
// stale.
func (f *Finder) ForSet(ctx context.Context, setID, userID int) ([]Group, error) {
	set, err := f.src.SetByID(ctx, setID)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, nil
	}

	memberships, err := f.src.MembershipsForSet(ctx, setID, set.SetTypeID, set.CategoryID)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return nil, nil
	}

	seen := make(map[int]struct{}, len(memberships))
	var candidateIDs []int
	for _, m := range memberships {
		if m.UserID == userID {
			continue
		}
		if _, ok := seen[m.UserID]; ok {
			continue
		}
		seen[m.UserID] = struct{}{}
		candidateIDs = append(candidateIDs, m.UserID)
	}
	if len(candidateIDs) == 0 {
		return nil, nil
	}

	candidates, err := f.src.UsersByID(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}

	items, err := f.src.ItemsForSet(ctx, setID, append([]int{userID}, candidateIDs...))
	if err != nil {
		return nil, err
	}
	idx := BuildIndex(items)

	invA := idx.Inventory(userID, setID)

	var groups []Group
	for _, u := range candidates {
		invB := idx.Inventory(u.ID, setID)
		if len(invA) == 0 || len(invB) == 0 {
			continue
		}
		aGives, bGives := Match(invA, invB)
		if len(aGives) == 0 && len(bGives) == 0 {
			continue
		}
		groups = append(groups, Group{
			User: UserSummary{
				UserID: u.ID,
				Name:   u.Name,
				Email:  u.Email,
				Logo:   u.Logo,
			},
			Edges: []Edge{{
				SetID:        setID,
				SetName:      set.Name,
				UserACanGive: aGives,
				UserBCanGive: bGives,
			}},
		})
	}
	return groups, nil
}
