package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"fitbuddy/internal/model"
	"fitbuddy/internal/service"

	"github.com/rs/zerolog"
)

// FoodsPath is the collection route for the food catalogue.
const FoodsPath = "/api/foods"

// FoodHandler handles food catalogue HTTP requests.
type FoodHandler struct {
	service service.FoodService
	logger  zerolog.Logger
}

// NewFoodHandler creates a new food handler.
func NewFoodHandler(service service.FoodService, logger zerolog.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		logger:  logger.With().Str("handler", "food").Logger(),
	}
}

// List handles GET /api/foods?category=&search= requests.
// A query matching nothing is still a 200 with an empty list.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	params := r.URL.Query()
	query := model.FoodQuery{
		Category: params.Get("category"),
		Search:   params.Get("search"),
	}

	result, err := h.service.List(r.Context(), query)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve foods", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetByID handles GET /api/foods/{id} requests.
func (h *FoodHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	rawID := strings.TrimPrefix(r.URL.Path, FoodsPath+"/")
	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, model.ErrInvalidFoodID.Message, h.logger)
		return
	}

	food, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		var domainErr *model.DomainError
		if !errors.As(err, &domainErr) {
			writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve food", h.logger)
			return
		}

		status := http.StatusBadRequest
		if domainErr.Code == model.ErrCodeFoodNotFound {
			status = http.StatusNotFound
		}
		writeError(w, r, status, domainErr.Code, domainErr.Message, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, food)
}

// Categories handles GET /api/foods/categories requests.
func (h *FoodHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	categories, err := h.service.Categories(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve categories", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.CategoryListResponse{Categories: categories})
}
