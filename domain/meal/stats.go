package meal

import "time"

// DateLayout is the calendar-date format used in daily stats responses.
const DateLayout = "2006-01-02"

// DailyStats is the additive aggregate of one user's meals over one UTC
// calendar day.
type DailyStats struct {
	UserID        string  `json:"user_id"`
	Date          string  `json:"date"`
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalFat      float64 `json:"total_fat"`
	TotalCarbs    float64 `json:"total_carbs"`
	MealCount     int     `json:"meal_count"`
}

// AggregateDaily reduces a set of meals, already filtered to one user and one
// calendar day, into daily totals. It is a pure reduction: zero meals yield
// zero totals, never an error. UserID and date are echoed from the query
// inputs, not derived from the records.
func AggregateDaily(userID string, date time.Time, meals []Meal) DailyStats {
	stats := DailyStats{
		UserID: userID,
		Date:   date.UTC().Format(DateLayout),
	}

	for _, m := range meals {
		stats.TotalCalories += m.Calories
		stats.TotalProtein += m.Protein
		stats.TotalFat += m.Fat
		stats.TotalCarbs += m.Carbs
		stats.MealCount++
	}

	return stats
}

// DayRange returns the inclusive bounds of the UTC calendar day containing t:
// 00:00:00.000000 through 23:59:59.999999. The day boundary is deliberately
// the server's UTC date, not the user's local date.
func DayRange(t time.Time) (start, end time.Time) {
	t = t.UTC()
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	end = start.Add(24*time.Hour - time.Microsecond)
	return start, end
}
