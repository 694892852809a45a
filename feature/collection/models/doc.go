// Package models defines the persisted entities of the collection tracker:
// users, categories, set types, sets, memberships and per-user items.
//
// The schema mirrors the relational layout the tracker has always used.
// Memberships denormalize the set's classification (set type, category) onto
// the row; the exchange feature relies on this to detect stale rows.
package models
