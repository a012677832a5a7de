package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitbuddy/internal/catalog"
	"fitbuddy/internal/handler"
	"fitbuddy/internal/middleware"
	"fitbuddy/internal/model"
	"fitbuddy/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zerolog.Nop()
	c, err := catalog.Builtin()
	require.NoError(t, err)

	foodHandler := handler.NewFoodHandler(service.NewFoodService(c, logger), logger)
	return New(foodHandler, logger)
}

func TestRouter_Routes(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "Health", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK},
		{name: "List foods", method: http.MethodGet, path: "/api/foods", expectedStatus: http.StatusOK},
		{name: "List foods trailing slash", method: http.MethodGet, path: "/api/foods/", expectedStatus: http.StatusOK},
		{name: "Categories", method: http.MethodGet, path: "/api/foods/categories", expectedStatus: http.StatusOK},
		{name: "Food by ID", method: http.MethodGet, path: "/api/foods/5", expectedStatus: http.StatusOK},
		{name: "Unknown food", method: http.MethodGet, path: "/api/foods/500", expectedStatus: http.StatusNotFound},
		{name: "Bad food ID", method: http.MethodGet, path: "/api/foods/x", expectedStatus: http.StatusBadRequest},
		{name: "Write rejected", method: http.MethodPost, path: "/api/foods", expectedStatus: http.StatusMethodNotAllowed},
		{name: "Preflight", method: http.MethodOptions, path: "/api/foods", expectedStatus: http.StatusNoContent},
		{name: "Unknown route", method: http.MethodGet, path: "/api/unknown", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_FoodQueries(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name          string
		query         string
		expectedTotal int
	}{
		{name: "All foods", query: "", expectedTotal: 18},
		{name: "Protein category", query: "?category=protein", expectedTotal: 6},
		{name: "Search only", query: "?search=an", expectedTotal: 2},
		{name: "Category and search", query: "?category=Fruits&search=BERR", expectedTotal: 1},
		{name: "Unknown category", query: "?category=Desserts", expectedTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/foods"+tt.query, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var resp model.FoodListResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expectedTotal, resp.Total)
			assert.Len(t, resp.Foods, tt.expectedTotal)
		})
	}
}

func TestRouter_ErrorCarriesCorrelationID(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/foods/404", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-me")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, model.ErrCodeFoodNotFound, resp.Error)
	assert.Equal(t, "trace-me", resp.CorrelationID)
}

func TestRouter_UnknownRouteIsJSON(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/meals", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, model.ErrCodeNotFound, resp.Error)
	assert.NotEmpty(t, resp.CorrelationID)
}
