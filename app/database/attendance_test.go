package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A nil *sql.DB proves no query runs once the boundary has passed: remaining
// opportunities are zero by definition, not by counting.
func TestCountUpcomingEventsByCategoryPastBoundary(t *testing.T) {
	boundary := time.Date(2026, 2, 11, 23, 59, 59, 0, time.UTC)
	now := boundary.Add(time.Second)

	counts, err := CountUpcomingEventsByCategory(nil, now, boundary)
	require.NoError(t, err)
	assert.Empty(t, counts)
	assert.NotNil(t, counts)
}

func TestCountUpcomingEventsByCategoryWayPastBoundary(t *testing.T) {
	boundary := time.Date(2026, 2, 11, 23, 59, 59, 0, time.UTC)
	now := boundary.AddDate(0, 3, 0)

	counts, err := CountUpcomingEventsByCategory(nil, now, boundary)
	require.NoError(t, err)
	assert.Empty(t, counts)
}
