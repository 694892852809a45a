// Package collection implements inventory and set maintenance: listing the
// catalogue (sets, set types, categories), per-user item CRUD, the two bulk
// add modes (status-overwriting and status-preserving), membership handling
// (join/leave), and set-level cleanup.
//
// Bulk adds compare numbers as strings against the existing inventory, so a
// re-imported checklist updates rather than duplicates rows.
package collection
