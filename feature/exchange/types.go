package exchange

import (
	"context"

	"collection-tracker/feature/collection/models"
)

// ItemOffer is a single item one side of an exchange can hand over.
// The duplicate flag is already normalized: only an explicitly-true stored
// flag survives as true.
type ItemOffer struct {
	Number      string `json:"number"`
	Duplicate   bool   `json:"duplicate"`
	Description string `json:"description"`
}

// Edge is the exchange potential between two users over one set.
// UserACanGive lists what the requesting user can give the counterpart,
// UserBCanGive the reverse.
type Edge struct {
	SetID        int         `json:"set_id"`
	SetName      string      `json:"set_name"`
	UserACanGive []ItemOffer `json:"user_a_can_give"`
	UserBCanGive []ItemOffer `json:"user_b_can_give"`
}

// UserSummary identifies the counterpart user of a group. Copied verbatim
// from the user record, never mutated.
type UserSummary struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Logo   string `json:"logo"`
}

// Group collects all non-empty edges against one counterpart user.
type Group struct {
	User  UserSummary `json:"user"`
	Edges []Edge      `json:"edges"`
}

// Source supplies the read-only snapshot the finders work on. Implementations
// must return records in a deterministic order for a fixed dataset.
type Source interface {
	// Users returns every user.
	Users(ctx context.Context) ([]models.User, error)
	// UsersByID returns the users whose id is in ids.
	UsersByID(ctx context.Context, ids []int) ([]models.User, error)
	// Sets returns every set.
	Sets(ctx context.Context) ([]models.Set, error)
	// SetByID returns one set, or nil without error when it does not exist.
	SetByID(ctx context.Context, id int) (*models.Set, error)
	// SetTypes returns every set type.
	SetTypes(ctx context.Context) ([]models.SetType, error)
	// Memberships returns every membership row.
	Memberships(ctx context.Context) ([]models.Membership, error)
	// MembershipsForSet returns the membership rows for a set whose
	// denormalized classification still agrees with the set.
	MembershipsForSet(ctx context.Context, setID, setTypeID, categoryID int) ([]models.Membership, error)
	// Items returns every item record.
	Items(ctx context.Context) ([]models.Item, error)
	// ItemsForSet returns the items of the given users for one set.
	ItemsForSet(ctx context.Context, setID int, userIDs []int) ([]models.Item, error)
}
