package meal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateDaily(t *testing.T) {
	date := time.Date(2025, 10, 22, 14, 30, 0, 0, time.UTC)

	t.Run("sums nutrition fields and counts meals", func(t *testing.T) {
		meals := []Meal{
			{UserID: "u1", Calories: 300, Protein: 20, Fat: 10, Carbs: 40},
			{UserID: "u1", Calories: 500, Protein: 30, Fat: 20, Carbs: 60},
			{UserID: "u1", Calories: 250, Protein: 15, Fat: 5, Carbs: 30},
		}

		stats := AggregateDaily("u1", date, meals)

		assert.Equal(t, "u1", stats.UserID)
		assert.Equal(t, "2025-10-22", stats.Date)
		assert.Equal(t, 1050.0, stats.TotalCalories)
		assert.Equal(t, 65.0, stats.TotalProtein)
		assert.Equal(t, 35.0, stats.TotalFat)
		assert.Equal(t, 130.0, stats.TotalCarbs)
		assert.Equal(t, 3, stats.MealCount)
	})

	t.Run("zero meals yield zero totals", func(t *testing.T) {
		stats := AggregateDaily("u1", date, nil)

		assert.Equal(t, "u1", stats.UserID)
		assert.Equal(t, "2025-10-22", stats.Date)
		assert.Equal(t, 0.0, stats.TotalCalories)
		assert.Equal(t, 0.0, stats.TotalProtein)
		assert.Equal(t, 0.0, stats.TotalFat)
		assert.Equal(t, 0.0, stats.TotalCarbs)
		assert.Equal(t, 0, stats.MealCount)
	})

	t.Run("fractional values are summed exactly", func(t *testing.T) {
		meals := []Meal{
			{Calories: 120.5, Protein: 7.25, Fat: 3.5, Carbs: 14.75},
			{Calories: 80.25, Protein: 2.5, Fat: 1.25, Carbs: 10.5},
		}

		stats := AggregateDaily("u1", date, meals)

		assert.Equal(t, 200.75, stats.TotalCalories)
		assert.Equal(t, 9.75, stats.TotalProtein)
		assert.Equal(t, 4.75, stats.TotalFat)
		assert.Equal(t, 25.25, stats.TotalCarbs)
	})
}

func TestDayRange(t *testing.T) {
	start, end := DayRange(time.Date(2025, 10, 22, 17, 45, 12, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 10, 22, 23, 59, 59, 999999000, time.UTC), end)
}

func TestDayRangeSeparatesAdjacentDays(t *testing.T) {
	justBefore := time.Date(2025, 10, 22, 23, 59, 59, 500000000, time.UTC)
	justAfter := time.Date(2025, 10, 23, 0, 0, 0, 500000000, time.UTC)

	start, end := DayRange(justBefore)
	assert.True(t, !justBefore.Before(start) && !justBefore.After(end))
	assert.True(t, justAfter.After(end), "next-day meal must fall outside the previous day's range")

	nextStart, _ := DayRange(justAfter)
	assert.True(t, justAfter.After(nextStart) || justAfter.Equal(nextStart))
	assert.True(t, justBefore.Before(nextStart))
}

func TestDayRangeNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	// 02:30 on Oct 23 in UTC+5 is still Oct 22 in UTC.
	start, _ := DayRange(time.Date(2025, 10, 23, 2, 30, 0, 0, loc))

	require.Equal(t, time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC), start)
}
