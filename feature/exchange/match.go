package exchange

import (
	"collection-tracker/feature/collection/models"
)

// needKey is the matching key: the item number plus the normalized duplicate
// class. A surplus item only satisfies a need whose key is identical.
type needKey struct {
	number    string
	duplicate bool
}

// Match applies the exchange rule to two inventories of the same set and
// returns what each side can give the other.
//
// Surplus items (status 2) are offerable; needed items (status 0 or 3) are
// satisfiable. The duplicate flag is compared by class: anything other than a
// literal true counts as false, so an unset flag and an explicit false are
// interchangeable. Matching is many-to-one and non-consuming; a single need
// can be satisfied by several surplus copies and a surplus item keeps
// appearing for every viewer that needs it.
func Match(invA, invB []models.Item) (aGives, bGives []ItemOffer) {
	aGives = matchOneWay(surplus(invA), needs(invB))
	bGives = matchOneWay(surplus(invB), needs(invA))
	return aGives, bGives
}

// matchOneWay returns offers for every surplus item whose key appears in the
// counterpart's needs. Offer order follows the surplus inventory order.
func matchOneWay(give []models.Item, need []models.Item) []ItemOffer {
	if len(give) == 0 || len(need) == 0 {
		return nil
	}

	wanted := make(map[needKey]struct{}, len(need))
	for _, n := range need {
		wanted[needKey{number: n.Number, duplicate: n.IsDuplicate()}] = struct{}{}
	}

	var offers []ItemOffer
	for _, g := range give {
		if _, ok := wanted[needKey{number: g.Number, duplicate: g.IsDuplicate()}]; ok {
			offers = append(offers, ItemOffer{
				Number:      g.Number,
				Duplicate:   g.IsDuplicate(),
				Description: g.Description,
			})
		}
	}
	return offers
}

func surplus(inv []models.Item) []models.Item {
	var out []models.Item
	for _, it := range inv {
		if it.Status == models.StatusSurplus {
			out = append(out, it)
		}
	}
	return out
}

func needs(inv []models.Item) []models.Item {
	var out []models.Item
	for _, it := range inv {
		if it.Status == models.StatusNeeded || it.Status == models.StatusNeededUrgent {
			out = append(out, it)
		}
	}
	return out
}
