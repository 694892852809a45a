package exchange

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"collection-tracker/core/database"
	"collection-tracker/feature/collection/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, models.All()...))

	app := fiber.New()
	svc := NewService(NewGormSource(db), zap.NewNop())
	NewHandler(svc, zap.NewNop()).RegisterRoutes(app)
	return app, db
}

func seedPair(t *testing.T, db *gorm.DB) {
	t.Helper()

	records := []any{
		&models.User{ID: 1, Name: "Alice"},
		&models.User{ID: 2, Name: "Bob"},
		&models.SetType{ID: 100, Order: 1},
		&models.Set{ID: 10, Name: "World Cup", SetTypeID: 100, CategoryID: 5},
		&models.Membership{ID: 1, UserID: 1, SetID: 10, SetTypeID: 100, CategoryID: 5},
		&models.Membership{ID: 2, UserID: 2, SetID: 10, SetTypeID: 100, CategoryID: 5},
		&models.Item{ID: 1, Number: "42", Status: models.StatusSurplus, SetID: 10, UserID: 1},
		&models.Item{ID: 2, Number: "42", Status: models.StatusNeeded, SetID: 10, UserID: 2},
	}
	for _, r := range records {
		require.NoError(t, db.Create(r).Error)
	}
}

func TestHandleGlobalExchanges(t *testing.T) {
	app, db := setupTestApp(t)
	seedPair(t, db)

	req := httptest.NewRequest("POST", "/exchanges/global", strings.NewReader(`{"user_id": 1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body exchangesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Exchanges, 1)
	assert.Equal(t, 2, body.Exchanges[0].User.UserID)
	assert.Equal(t, "World Cup", body.Exchanges[0].Edges[0].SetName)
	assert.Equal(t, []ItemOffer{{Number: "42", Duplicate: false}}, body.Exchanges[0].Edges[0].UserACanGive)
}

func TestHandleGlobalExchanges_NoPartners(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/exchanges/global", strings.NewReader(`{"user_id": 1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// Empty results still serialize as a list, never null.
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"exchanges": []}`, string(raw))
}

func TestHandleGlobalExchanges_BadBody(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/exchanges/global", strings.NewReader(`{"user_id": `))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleSetExchanges(t *testing.T) {
	app, db := setupTestApp(t)
	seedPair(t, db)

	req := httptest.NewRequest("POST", "/exchanges/set", strings.NewReader(`{"set_id": 10, "user_id": 1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body exchangesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Exchanges, 1)
	assert.Len(t, body.Exchanges[0].Edges, 1)
}

func TestHandleSetExchanges_UnknownSet(t *testing.T) {
	app, db := setupTestApp(t)
	seedPair(t, db)

	req := httptest.NewRequest("POST", "/exchanges/set", strings.NewReader(`{"set_id": 999, "user_id": 1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"exchanges": []}`, string(raw))
}

func TestHandleSetExchanges_BadBody(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/exchanges/set", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
