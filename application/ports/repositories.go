package ports

import (
	"context"
	"time"

	"kbju-backend/domain/meal"
)

// MealRepository is the storage port for nutrition records. Records are
// write-once: there is no update or delete.
type MealRepository interface {
	// Save persists one meal. A failure from the backing store is surfaced
	// as-is; no retries.
	Save(ctx context.Context, m meal.Meal) error

	// ListByUser returns up to limit meals for a user in the store's native
	// order (ascending by timestamp). limit must be positive.
	ListByUser(ctx context.Context, userID string, limit int) ([]meal.Meal, error)

	// ListByUserBetween returns all meals for a user with timestamps in
	// [start, end], inclusive on both ends. An empty result is not an error.
	ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]meal.Meal, error)
}
