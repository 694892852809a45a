package exchange

import (
	"testing"

	"collection-tracker/feature/collection/models"

	"github.com/stretchr/testify/assert"
)

func ptr(b bool) *bool {
	return &b
}

func item(userID, setID int, number string, status int, dup *bool) models.Item {
	return models.Item{
		Number:    number,
		Status:    status,
		Duplicate: dup,
		SetID:     setID,
		UserID:    userID,
	}
}

func TestMatch_SurplusMeetsNeed(t *testing.T) {
	invA := []models.Item{item(1, 10, "42", models.StatusSurplus, nil)}
	invB := []models.Item{item(2, 10, "42", models.StatusNeeded, nil)}

	aGives, bGives := Match(invA, invB)

	assert.Equal(t, []ItemOffer{{Number: "42", Duplicate: false}}, aGives)
	assert.Empty(t, bGives)
}

func TestMatch_UrgentNeedIsEquallySatisfiable(t *testing.T) {
	invA := []models.Item{item(1, 10, "7", models.StatusSurplus, nil)}
	invB := []models.Item{item(2, 10, "7", models.StatusNeededUrgent, nil)}

	aGives, _ := Match(invA, invB)
	assert.Len(t, aGives, 1)
}

func TestMatch_CollectedNeverParticipates(t *testing.T) {
	invA := []models.Item{
		item(1, 10, "1", models.StatusCollected, nil),
		item(1, 10, "2", models.StatusSurplus, nil),
	}
	invB := []models.Item{
		item(2, 10, "1", models.StatusNeeded, nil),
		item(2, 10, "2", models.StatusCollected, nil),
	}

	aGives, bGives := Match(invA, invB)

	// A's collected "1" is not offerable, B's collected "2" is not a need.
	assert.Empty(t, aGives)
	assert.Empty(t, bGives)
}

func TestMatch_DuplicateFlagClasses(t *testing.T) {
	tests := []struct {
		name    string
		giveDup *bool
		needDup *bool
		matches bool
	}{
		{"unset vs unset", nil, nil, true},
		{"unset vs explicit false", nil, ptr(false), true},
		{"explicit false vs unset", ptr(false), nil, true},
		{"true vs true", ptr(true), ptr(true), true},
		{"true vs unset", ptr(true), nil, false},
		{"true vs explicit false", ptr(true), ptr(false), false},
		{"unset vs true", nil, ptr(true), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invA := []models.Item{item(1, 10, "42", models.StatusSurplus, tt.giveDup)}
			invB := []models.Item{item(2, 10, "42", models.StatusNeeded, tt.needDup)}

			aGives, _ := Match(invA, invB)
			if tt.matches {
				assert.Len(t, aGives, 1)
			} else {
				assert.Empty(t, aGives)
			}
		})
	}
}

func TestMatch_ManyToOne(t *testing.T) {
	// Two surplus copies of the same number both match a single need.
	invA := []models.Item{
		item(1, 10, "7", models.StatusSurplus, nil),
		item(1, 10, "7", models.StatusSurplus, nil),
	}
	invB := []models.Item{item(2, 10, "7", models.StatusNeeded, nil)}

	aGives, _ := Match(invA, invB)
	assert.Len(t, aGives, 2)
}

func TestMatch_Commutative(t *testing.T) {
	invA := []models.Item{
		item(1, 10, "1", models.StatusSurplus, nil),
		item(1, 10, "2", models.StatusNeeded, nil),
		item(1, 10, "3", models.StatusSurplus, ptr(true)),
	}
	invB := []models.Item{
		item(2, 10, "1", models.StatusNeededUrgent, nil),
		item(2, 10, "2", models.StatusSurplus, nil),
		item(2, 10, "3", models.StatusNeeded, ptr(true)),
	}

	aGives, bGives := Match(invA, invB)
	bGives2, aGives2 := Match(invB, invA)

	assert.Equal(t, aGives, aGives2)
	assert.Equal(t, bGives, bGives2)
}

func TestMatch_NoSurplusNoOffers(t *testing.T) {
	invA := []models.Item{item(1, 10, "5", models.StatusNeeded, nil)}
	invB := []models.Item{item(2, 10, "5", models.StatusNeededUrgent, nil)}

	aGives, bGives := Match(invA, invB)
	assert.Empty(t, aGives)
	assert.Empty(t, bGives)
}

func TestMatch_OfferCarriesDescriptionAndNormalizedFlag(t *testing.T) {
	give := item(1, 10, "9", models.StatusSurplus, ptr(true))
	give.Description = "bent corner"
	invB := []models.Item{item(2, 10, "9", models.StatusNeeded, ptr(true))}

	aGives, _ := Match([]models.Item{give}, invB)

	assert.Equal(t, []ItemOffer{{Number: "9", Duplicate: true, Description: "bent corner"}}, aGives)
}
