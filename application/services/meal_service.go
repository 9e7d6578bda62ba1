package services

import (
	"context"
	"time"

	"kbju-backend/application/ports"
	"kbju-backend/domain/meal"
	"kbju-backend/pkg/utils"

	"go.uber.org/zap"
)

// MealService orchestrates meal creation, history listing, and daily stats.
type MealService struct {
	repo   ports.MealRepository
	logger *zap.Logger
}

// NewMealService creates a new meal service
func NewMealService(repo ports.MealRepository, logger *zap.Logger) *MealService {
	return &MealService{
		repo:   repo,
		logger: logger,
	}
}

// CreateMealInput carries the validated fields for a new meal. The timestamp
// is never client-supplied; it is stamped here.
type CreateMealInput struct {
	UserID      string
	Calories    float64
	Protein     float64
	Fat         float64
	Carbs       float64
	MealType    string
	Description string
}

// CreateMeal stamps the current UTC instant on the record and persists it.
// The stored record is returned in full.
func (s *MealService) CreateMeal(ctx context.Context, in CreateMealInput) (meal.Meal, error) {
	m := meal.Meal{
		UserID:      in.UserID,
		Timestamp:   utils.NowUTC(),
		Calories:    in.Calories,
		Protein:     in.Protein,
		Fat:         in.Fat,
		Carbs:       in.Carbs,
		MealType:    in.MealType,
		Description: in.Description,
	}

	if err := s.repo.Save(ctx, m); err != nil {
		return meal.Meal{}, err
	}

	s.logger.Info("Meal created",
		zap.String("userID", m.UserID),
		zap.Time("timestamp", m.Timestamp),
		zap.Float64("calories", m.Calories),
	)

	return m, nil
}

// ListMeals returns up to limit meals for a user. A user with no meals gets
// an empty slice, not an error.
func (s *MealService) ListMeals(ctx context.Context, userID string, limit int) ([]meal.Meal, error) {
	meals, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Listed meals",
		zap.String("userID", userID),
		zap.Int("limit", limit),
		zap.Int("count", len(meals)),
	)

	return meals, nil
}

// TodayStats aggregates a user's meals over the current UTC calendar day.
// "Today" is the server's UTC date, not the user's local date.
func (s *MealService) TodayStats(ctx context.Context, userID string) (meal.DailyStats, error) {
	today := time.Now().UTC()
	start, end := meal.DayRange(today)

	meals, err := s.repo.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return meal.DailyStats{}, err
	}

	return meal.AggregateDaily(userID, today, meals), nil
}
