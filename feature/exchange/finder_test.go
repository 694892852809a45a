package exchange

import (
	"context"
	"fmt"
	"testing"

	"collection-tracker/feature/collection/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fixtureSource is an in-memory Source for finder tests. failOn names a
// method that should fail, to exercise the degrade-to-empty policy.
type fixtureSource struct {
	users       []models.User
	sets        []models.Set
	setTypes    []models.SetType
	memberships []models.Membership
	items       []models.Item
	failOn      string
}

func (f *fixtureSource) fail(method string) error {
	if f.failOn == method {
		return fmt.Errorf("%s: fixture failure", method)
	}
	return nil
}

func (f *fixtureSource) Users(ctx context.Context) ([]models.User, error) {
	return f.users, f.fail("Users")
}

func (f *fixtureSource) UsersByID(ctx context.Context, ids []int) ([]models.User, error) {
	if err := f.fail("UsersByID"); err != nil {
		return nil, err
	}
	want := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []models.User
	for _, u := range f.users {
		if _, ok := want[u.ID]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fixtureSource) Sets(ctx context.Context) ([]models.Set, error) {
	return f.sets, f.fail("Sets")
}

func (f *fixtureSource) SetByID(ctx context.Context, id int) (*models.Set, error) {
	if err := f.fail("SetByID"); err != nil {
		return nil, err
	}
	for _, s := range f.sets {
		if s.ID == id {
			s := s
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fixtureSource) SetTypes(ctx context.Context) ([]models.SetType, error) {
	return f.setTypes, f.fail("SetTypes")
}

func (f *fixtureSource) Memberships(ctx context.Context) ([]models.Membership, error) {
	return f.memberships, f.fail("Memberships")
}

func (f *fixtureSource) MembershipsForSet(ctx context.Context, setID, setTypeID, categoryID int) ([]models.Membership, error) {
	if err := f.fail("MembershipsForSet"); err != nil {
		return nil, err
	}
	var out []models.Membership
	for _, m := range f.memberships {
		if m.SetID == setID && m.SetTypeID == setTypeID && m.CategoryID == categoryID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fixtureSource) Items(ctx context.Context) ([]models.Item, error) {
	return f.items, f.fail("Items")
}

func (f *fixtureSource) ItemsForSet(ctx context.Context, setID int, userIDs []int) ([]models.Item, error) {
	if err := f.fail("ItemsForSet"); err != nil {
		return nil, err
	}
	want := make(map[int]struct{}, len(userIDs))
	for _, id := range userIDs {
		want[id] = struct{}{}
	}
	var out []models.Item
	for _, it := range f.items {
		if it.SetID != setID {
			continue
		}
		if _, ok := want[it.UserID]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

// twoUserFixture: users 1 and 2 share set 10; user 1 has a surplus "42" that
// user 2 needs.
func twoUserFixture() *fixtureSource {
	return &fixtureSource{
		users: []models.User{
			{ID: 1, Name: "Alice", Email: "alice@example.com"},
			{ID: 2, Name: "Bob", Email: "bob@example.com", Logo: "bob.png"},
		},
		sets:     []models.Set{{ID: 10, Name: "World Cup", SetTypeID: 100, CategoryID: 5}},
		setTypes: []models.SetType{{ID: 100, Order: 1}},
		memberships: []models.Membership{
			{ID: 1, UserID: 1, SetID: 10, SetTypeID: 100, CategoryID: 5},
			{ID: 2, UserID: 2, SetID: 10, SetTypeID: 100, CategoryID: 5},
		},
		items: []models.Item{
			item(1, 10, "42", models.StatusSurplus, nil),
			item(2, 10, "42", models.StatusNeeded, nil),
		},
	}
}

func TestGlobal_FindsCounterpart(t *testing.T) {
	f := NewFinder(twoUserFixture())

	groups, err := f.Global(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, UserSummary{UserID: 2, Name: "Bob", Email: "bob@example.com", Logo: "bob.png"}, groups[0].User)
	assert.Len(t, groups[0].Edges, 1)

	edge := groups[0].Edges[0]
	assert.Equal(t, 10, edge.SetID)
	assert.Equal(t, "World Cup", edge.SetName)
	assert.Equal(t, []ItemOffer{{Number: "42", Duplicate: false}}, edge.UserACanGive)
	assert.Empty(t, edge.UserBCanGive)
}

func TestGlobal_ExcludesRequester(t *testing.T) {
	src := twoUserFixture()
	// Data error: requester shares a set with themself via a duplicate row.
	src.memberships = append(src.memberships, models.Membership{ID: 3, UserID: 1, SetID: 10, SetTypeID: 100, CategoryID: 5})

	groups, err := NewFinder(src).Global(context.Background(), 1)

	assert.NoError(t, err)
	for _, g := range groups {
		assert.NotEqual(t, 1, g.User.UserID)
	}
}

func TestGlobal_NoCommonSets(t *testing.T) {
	src := twoUserFixture()
	src.memberships = []models.Membership{
		{ID: 1, UserID: 1, SetID: 10, SetTypeID: 100, CategoryID: 5},
	}

	groups, err := NewFinder(src).Global(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGlobal_SkipsUsersWithoutEdges(t *testing.T) {
	src := twoUserFixture()
	// Bob's need disappears: the shared set produces no edge, so no group.
	src.items = []models.Item{
		item(1, 10, "42", models.StatusSurplus, nil),
		item(2, 10, "42", models.StatusCollected, nil),
	}

	groups, err := NewFinder(src).Global(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGlobal_OnlyMatchingSetProducesEdge(t *testing.T) {
	src := twoUserFixture()
	src.sets = append(src.sets, models.Set{ID: 20, Name: "Dinosaurs", SetTypeID: 100, CategoryID: 5})
	src.memberships = append(src.memberships,
		models.Membership{ID: 3, UserID: 1, SetID: 20, SetTypeID: 100, CategoryID: 5},
		models.Membership{ID: 4, UserID: 2, SetID: 20, SetTypeID: 100, CategoryID: 5},
	)
	// Both users track set 20 but neither has surplus there.
	src.items = append(src.items,
		item(1, 20, "1", models.StatusNeeded, nil),
		item(2, 20, "1", models.StatusNeeded, nil),
	)

	groups, err := NewFinder(src).Global(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Len(t, groups[0].Edges, 1)
	assert.Equal(t, 10, groups[0].Edges[0].SetID)
}

func TestGlobal_DuplicateMembershipsYieldOneEdge(t *testing.T) {
	src := twoUserFixture()
	// Both users carry a second membership row for the same set.
	src.memberships = append(src.memberships,
		models.Membership{ID: 3, UserID: 1, SetID: 10, SetTypeID: 100, CategoryID: 5},
		models.Membership{ID: 4, UserID: 2, SetID: 10, SetTypeID: 100, CategoryID: 5},
	)

	groups, err := NewFinder(src).Global(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Len(t, groups[0].Edges, 1)
}

func TestGlobal_EdgeOrdering(t *testing.T) {
	src := &fixtureSource{
		users: []models.User{{ID: 1}, {ID: 2}},
		sets: []models.Set{
			{ID: 10, Name: "late", SetTypeID: 100, Order: 5},
			{ID: 11, Name: "early-type", SetTypeID: 200, Order: 9},
			{ID: 12, Name: "early-set", SetTypeID: 100, Order: 3},
		},
		setTypes: []models.SetType{{ID: 100, Order: 2}, {ID: 200, Order: 1}},
	}
	for i, setID := range []int{10, 11, 12} {
		src.memberships = append(src.memberships,
			models.Membership{ID: i*2 + 1, UserID: 1, SetID: setID},
			models.Membership{ID: i*2 + 2, UserID: 2, SetID: setID},
		)
		src.items = append(src.items,
			item(1, setID, "1", models.StatusSurplus, nil),
			item(2, setID, "1", models.StatusNeeded, nil),
		)
	}

	groups, err := NewFinder(src).Global(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, groups, 1)

	var order []string
	for _, e := range groups[0].Edges {
		order = append(order, e.SetName)
	}
	// Set type order wins, then set order.
	assert.Equal(t, []string{"early-type", "early-set", "late"}, order)
}

func TestGlobal_SourceFailure(t *testing.T) {
	for _, method := range []string{"Users", "Sets", "SetTypes", "Memberships", "Items"} {
		t.Run(method, func(t *testing.T) {
			src := twoUserFixture()
			src.failOn = method

			_, err := NewFinder(src).Global(context.Background(), 1)
			assert.Error(t, err)
		})
	}
}

func TestForSet_ConcreteScenario(t *testing.T) {
	f := NewFinder(twoUserFixture())

	groups, err := f.ForSet(context.Background(), 10, 1)

	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].User.UserID)
	assert.Len(t, groups[0].Edges, 1)

	edge := groups[0].Edges[0]
	assert.Equal(t, "World Cup", edge.SetName)
	assert.Equal(t, []ItemOffer{{Number: "42", Duplicate: false}}, edge.UserACanGive)
	assert.Empty(t, edge.UserBCanGive)
}

func TestForSet_DuplicateClassMismatchOmitsGroup(t *testing.T) {
	src := twoUserFixture()
	src.items = []models.Item{
		item(1, 10, "42", models.StatusSurplus, ptr(true)),
		item(2, 10, "42", models.StatusNeeded, nil),
	}

	groups, err := NewFinder(src).ForSet(context.Background(), 10, 1)

	assert.NoError(t, err)
	assert.Empty(t, groups)
}

func TestForSet_MissingSet(t *testing.T) {
	groups, err := NewFinder(twoUserFixture()).ForSet(context.Background(), 999, 1)

	assert.NoError(t, err)
	assert.Empty(t, groups)
}

func TestForSet_StaleMembershipExcluded(t *testing.T) {
	src := twoUserFixture()
	// Bob's membership row disagrees with the set's current classification.
	src.memberships[1].CategoryID = 99

	groups, err := NewFinder(src).ForSet(context.Background(), 10, 1)

	assert.NoError(t, err)
	assert.Empty(t, groups)
}

func TestForSet_SourceFailure(t *testing.T) {
	for _, method := range []string{"SetByID", "MembershipsForSet", "UsersByID", "ItemsForSet"} {
		t.Run(method, func(t *testing.T) {
			src := twoUserFixture()
			src.failOn = method

			_, err := NewFinder(src).ForSet(context.Background(), 10, 1)
			assert.Error(t, err)
		})
	}
}

func TestService_DegradesToEmptyOnFailure(t *testing.T) {
	src := twoUserFixture()
	src.failOn = "Items"
	svc := NewService(src, zap.NewNop())

	assert.Empty(t, svc.FindGlobalExchanges(context.Background(), 1))

	src.failOn = "ItemsForSet"
	assert.Empty(t, svc.FindSetExchanges(context.Background(), 10, 1))
}

func TestService_PassesThroughResults(t *testing.T) {
	svc := NewService(twoUserFixture(), zap.NewNop())

	groups := svc.FindGlobalExchanges(context.Background(), 1)
	assert.Len(t, groups, 1)

	groups = svc.FindSetExchanges(context.Background(), 10, 1)
	assert.Len(t, groups, 1)
}
