package meal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampRoundTrip(t *testing.T) {
	ts := time.Date(2025, 10, 22, 12, 30, 45, 123456000, time.UTC)

	s := FormatTimestamp(ts)
	assert.Equal(t, "2025-10-22T12:30:45.123456Z", s)

	parsed, err := ParseTimestamp(s)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}

func TestTimestampIsFixedWidth(t *testing.T) {
	// Trailing zeros must not be trimmed, or lexicographic sort-key order
	// would diverge from chronological order.
	s := FormatTimestamp(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	assert.Equal(t, "2025-01-02T03:04:05.000000Z", s)
}

func TestTimestampOrderMatchesStringOrder(t *testing.T) {
	base := time.Date(2025, 10, 22, 23, 59, 59, 900000000, time.UTC)
	times := []time.Time{
		base,
		base.Add(50 * time.Microsecond),
		base.Add(100 * time.Millisecond), // crosses into the next day
		base.Add(time.Second),
	}

	for i := 1; i < len(times); i++ {
		prev, next := FormatTimestamp(times[i-1]), FormatTimestamp(times[i])
		assert.Less(t, prev, next)
	}
}

func TestTimestampNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC-4", -4*3600)
	s := FormatTimestamp(time.Date(2025, 10, 22, 20, 0, 0, 0, loc))
	assert.Equal(t, "2025-10-23T00:00:00.000000Z", s)
}
