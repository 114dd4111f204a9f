package campaign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now  = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
)

func liveCampaign(id string, priority int, createdAt time.Time) Campaign {
	return Campaign{
		ID:        id,
		Text:      "banner " + id,
		Priority:  priority,
		StartDate: day0,
		EndDate:   day0.AddDate(0, 1, 0),
		IsActive:  true,
		CreatedAt: createdAt,
	}
}

func TestSelectActive_HigherPriorityWins(t *testing.T) {
	low := liveCampaign("low", 1, day0.Add(time.Hour))
	high := liveCampaign("high", 5, day0)

	got := SelectActive([]Campaign{low, high}, now)
	require.NotNil(t, got)
	assert.Equal(t, "high", got.ID)

	got = SelectActive([]Campaign{high, low}, now)
	require.NotNil(t, got)
	assert.Equal(t, "high", got.ID)
}

func TestSelectActive_TieBrokenByNewestCreatedAt(t *testing.T) {
	older := liveCampaign("older", 3, day0)
	newer := liveCampaign("newer", 3, day0.Add(time.Minute))

	for _, order := range [][]Campaign{{older, newer}, {newer, older}} {
		got := SelectActive(order, now)
		require.NotNil(t, got)
		assert.Equal(t, "newer", got.ID)
	}
}

func TestSelectActive_NoneWhenNotLive(t *testing.T) {
	disabled := liveCampaign("disabled", 9, day0)
	disabled.IsActive = false

	future := liveCampaign("future", 9, day0)
	future.StartDate = now.Add(time.Hour)
	future.EndDate = now.AddDate(0, 0, 3)

	past := liveCampaign("past", 9, day0)
	past.EndDate = now.Add(-time.Second)

	assert.Nil(t, SelectActive([]Campaign{disabled, future, past}, now))
	assert.Nil(t, SelectActive(nil, now))
}

func TestSelectActive_IgnoresHigherPriorityOutsideWindow(t *testing.T) {
	expired := liveCampaign("expired", 100, day0)
	expired.EndDate = now.Add(-time.Hour)
	current := liveCampaign("current", 1, day0)

	got := SelectActive([]Campaign{expired, current}, now)
	require.NotNil(t, got)
	assert.Equal(t, "current", got.ID)
}

func TestIsLive_WindowIsInclusive(t *testing.T) {
	c := liveCampaign("c", 1, day0)

	assert.True(t, c.IsLive(c.StartDate))
	assert.True(t, c.IsLive(c.EndDate))
	assert.False(t, c.IsLive(c.StartDate.Add(-time.Nanosecond)))
	assert.False(t, c.IsLive(c.EndDate.Add(time.Nanosecond)))
}
