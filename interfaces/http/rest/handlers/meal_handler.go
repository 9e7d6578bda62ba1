package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kbju-backend/application/services"
	"kbju-backend/domain/meal"
	apperrors "kbju-backend/pkg/errors"
	"kbju-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// defaultListLimit caps a meal listing when the caller supplies no limit.
const defaultListLimit = 50

// MealHandler handles meal-related HTTP requests
type MealHandler struct {
	meals  *services.MealService
	logger *zap.Logger
}

// NewMealHandler creates a new meal handler
func NewMealHandler(meals *services.MealService, logger *zap.Logger) *MealHandler {
	return &MealHandler{
		meals:  meals,
		logger: logger,
	}
}

// CreateMealRequest represents the request body for creating a meal. The four
// nutrition fields are pointers so that an explicit 0 passes "required" while
// an absent field does not.
type CreateMealRequest struct {
	UserID      string   `json:"user_id" validate:"required"`
	Calories    *float64 `json:"calories" validate:"required,gte=0"`
	Protein     *float64 `json:"protein" validate:"required,gte=0"`
	Fat         *float64 `json:"fat" validate:"required,gte=0"`
	Carbs       *float64 `json:"carbs" validate:"required,gte=0"`
	MealType    string   `json:"meal_type,omitempty"`
	Description string   `json:"description,omitempty"`
}

// CreateMeal handles POST /api/meals
func (h *MealHandler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var req CreateMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Validate before any storage access
	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	m, err := h.meals.CreateMeal(r.Context(), services.CreateMealInput{
		UserID:      req.UserID,
		Calories:    *req.Calories,
		Protein:     *req.Protein,
		Fat:         *req.Fat,
		Carbs:       *req.Carbs,
		MealType:    req.MealType,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error("Failed to create meal",
			zap.String("userID", req.UserID),
			zap.Error(err),
		)
		h.respondError(w, errorStatus(err), "Failed to create meal: "+err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, m)
}

// ListMeals handles GET /api/meals/{userID}
func (h *MealHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		h.respondError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	meals, err := h.meals.ListMeals(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error("Failed to list meals",
			zap.String("userID", userID),
			zap.Error(err),
		)
		h.respondError(w, errorStatus(err), "Failed to retrieve meals: "+err.Error())
		return
	}

	// An unknown user yields an empty array, never null and never an error.
	if meals == nil {
		meals = []meal.Meal{}
	}

	h.respondJSON(w, http.StatusOK, meals)
}

// TodayStats handles GET /api/stats/{userID}/today
func (h *MealHandler) TodayStats(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		h.respondError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	stats, err := h.meals.TodayStats(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to compute daily stats",
			zap.String("userID", userID),
			zap.Error(err),
		)
		h.respondError(w, errorStatus(err), "Failed to retrieve daily stats: "+err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}

func (h *MealHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *MealHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}

// errorStatus maps a service error to an HTTP status.
func errorStatus(err error) int {
	if appErr := apperrors.GetAppError(err); appErr != nil && appErr.HTTPStatus != 0 {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}
