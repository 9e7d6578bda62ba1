package meal

import "time"

// TimestampLayout is the serialization format for the timestamp sort key.
// Fixed-width microsecond precision keeps lexicographic order identical to
// chronological order within a partition, and gives same-second entries a
// high-precision tiebreaker.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Meal is one meal's nutrition facts for a user. Records are immutable once
// written: the API exposes no update or delete.
type Meal struct {
	UserID      string    `json:"user_id"`
	Timestamp   time.Time `json:"timestamp"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Fat         float64   `json:"fat"`
	Carbs       float64   `json:"carbs"`
	MealType    string    `json:"meal_type,omitempty"`
	Description string    `json:"description,omitempty"`
}

// FormatTimestamp renders t as a sort-key string in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a sort-key string back into a UTC instant.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}
