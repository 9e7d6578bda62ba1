package utils

import "time"

// NowUTC returns the current time in UTC truncated to microsecond precision,
// the resolution of the stored timestamp sort key.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
