package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"fitbuddy/internal/catalog"
	"fitbuddy/internal/client"
	"fitbuddy/internal/config"
	"fitbuddy/internal/database"
	"fitbuddy/internal/handler"
	"fitbuddy/internal/model"
	"fitbuddy/internal/repository"
	"fitbuddy/internal/router"
	"fitbuddy/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	c, err := catalog.Open(context.Background(), cfg, logger)
	require.NoError(t, err)

	foodService := service.NewFoodService(c, logger)
	foodHandler := handler.NewFoodHandler(foodService, logger)

	return router.New(foodHandler, logger)
}

func getFoods(t *testing.T, server http.Handler, target string) model.FoodListResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.FoodListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestFoodAPI_PostgresSource_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	seeded := SeedBuiltinFoods(t, testDB.Pool)
	server := setupTestServer(t, testDB.PostgresConfig())

	t.Run("GET /api/foods returns the seeded catalogue in order", func(t *testing.T) {
		resp := getFoods(t, server, "/api/foods")

		assert.Equal(t, seeded, resp.Foods)
		assert.Equal(t, len(seeded), resp.Total)
	})

	t.Run("GET /api/foods?category= matches case-insensitively", func(t *testing.T) {
		resp := getFoods(t, server, "/api/foods?category=PROTEIN")

		assert.Equal(t, 6, resp.Total)
		for _, f := range resp.Foods {
			assert.Equal(t, "Protein", f.Category)
		}
	})

	t.Run("GET /api/foods with both filters", func(t *testing.T) {
		resp := getFoods(t, server, "/api/foods?category=fruits&search=berr")

		require.Equal(t, 1, resp.Total)
		assert.Contains(t, resp.Foods[0].Name, "Blueberries")
	})

	t.Run("GET /api/foods with no matches", func(t *testing.T) {
		resp := getFoods(t, server, "/api/foods?search=pizza")

		assert.NotNil(t, resp.Foods)
		assert.Empty(t, resp.Foods)
		assert.Zero(t, resp.Total)
	})

	t.Run("GET /api/foods/{id} returns 404 for unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/foods/9999", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var errResp model.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
		assert.Equal(t, model.ErrCodeFoodNotFound, errResp.Error)
		assert.NotEmpty(t, errResp.CorrelationID)
	})

	t.Run("Catalogue is a snapshot taken at startup", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		t.Cleanup(func() { SeedFoods(t, testDB.Pool, seeded) })

		resp := getFoods(t, server, "/api/foods")
		assert.Equal(t, len(seeded), resp.Total)
	})
}

func TestFoodAPI_PostgresSource_InvalidRows_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	SeedFoods(t, testDB.Pool, []model.FoodRecord{
		{ID: 1, Name: "  ", Calories: 10, Category: "X"},
	})

	c, err := catalog.Open(context.Background(), testDB.PostgresConfig(), zerolog.Nop())

	assert.ErrorIs(t, err, model.ErrInvalidFoodRecord)
	assert.Nil(t, c)
}

// The postgres and sqlite sources must produce identical catalogues from the
// same seed data.
func TestCatalogSources_Agree_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := SetupTestDB(t)
	seeded := SeedBuiltinFoods(t, testDB.Pool)

	sqlitePath := filepath.Join(t.TempDir(), "foods.db")
	db, err := database.OpenSQLite(ctx, sqlitePath, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, repository.EnsureSQLiteSchema(ctx, db))
	require.NoError(t, repository.SeedSQLiteFoods(ctx, db, seeded))
	require.NoError(t, db.Close())

	fromPostgres, err := catalog.Open(ctx, testDB.PostgresConfig(), zerolog.Nop())
	require.NoError(t, err)

	fromSQLite, err := catalog.Open(ctx, &config.Config{
		Catalog: config.CatalogConfig{Source: config.SourceSQLite},
		SQLite:  config.SQLiteConfig{Path: sqlitePath},
	}, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, fromPostgres.Foods(), fromSQLite.Foods())
	assert.Equal(t, fromPostgres.Categories(), fromSQLite.Categories())
}

func TestFoodClient_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	SeedBuiltinFoods(t, testDB.Pool)

	ts := httptest.NewServer(setupTestServer(t, testDB.PostgresConfig()))
	defer ts.Close()

	c := &client.FoodClient{BaseURL: ts.URL, HTTPClient: ts.Client(), Logger: zerolog.Nop()}

	resp, err := c.Query(context.Background(), model.FoodQuery{Category: "Seeds"})
	require.NoError(t, err)
	assert.Equal(t, resp.Total, len(resp.Foods))
	for _, f := range resp.Foods {
		assert.Equal(t, "Seeds", f.Category)
	}
}

func TestCORS_Integration(t *testing.T) {
	server := setupTestServer(t, &config.Config{
		Catalog: config.CatalogConfig{Source: config.SourceEmbedded},
	})

	t.Run("OPTIONS request returns CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/foods", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "GET")
	})
}
