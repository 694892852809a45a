package exchange

import (
	"collection-tracker/feature/collection/models"
)

// inventoryKey addresses one user's items within one set.
type inventoryKey struct {
	userID int
	setID  int
}

// InventoryIndex groups item records by (user, set) for constant-time lookup
// during matching. Bucket order follows input order, so a fixed input always
// produces the same index.
type InventoryIndex map[inventoryKey][]models.Item

// BuildIndex builds the index in one linear pass over the records.
func BuildIndex(items []models.Item) InventoryIndex {
	idx := make(InventoryIndex)
	for _, it := range items {
		k := inventoryKey{userID: it.UserID, setID: it.SetID}
		idx[k] = append(idx[k], it)
	}
	return idx
}

// Inventory returns the items a user holds in a set. Missing buckets come
// back as an empty slice.
func (idx InventoryIndex) Inventory(userID, setID int) []models.Item {
	return idx[inventoryKey{userID: userID, setID: setID}]
}
