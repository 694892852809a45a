// Package exchange implements the exchange-matching engine of the collection
// tracker: given the per-set inventories of two or more users, it determines
// which items one side can give the other.
//
// # Matching rule
//
// An item is offerable when its status is surplus, and satisfiable when its
// status is needed or needed-urgent; collected items never take part. Two
// items match on (number, duplicate class), where the duplicate class treats
// anything other than a literal true as false. Matching is many-to-one and
// non-consuming: this is read-only discovery, not a reservation.
//
// # Scans
//
//   - Global: every user, every shared set. Edges within a group are
//     deduplicated by set and sorted by (set type order, set order).
//   - Per set: only the holders of one set, stale membership rows excluded.
//
// # Components
//
//   - InventoryIndex: (user, set) -> items lookup built once per scan.
//   - Match: the pure two-inventory matching rule.
//   - Finder: orchestrates the two scans over a Source snapshot.
//   - Service: the public query API; scan failures degrade to an empty
//     result and are reported through the logger.
//   - GormSource: the relational Source implementation.
//
// The Source is injected, never ambient, so the engine tests run against
// fixtures without a database.
package exchange
