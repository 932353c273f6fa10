package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBestPostingTimeWeekdayPeak(t *testing.T) {
	// Tuesday 9 AM.
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	got := BestPostingTime(now)

	assert.True(t, got.IsGoodTime)
	assert.Empty(t, got.NextBestTime)
}

func TestBestPostingTimeWeekdayOffPeak(t *testing.T) {
	// Tuesday 3 AM.
	now := time.Date(2026, 8, 25, 3, 0, 0, 0, time.UTC)

	got := BestPostingTime(now)

	assert.False(t, got.IsGoodTime)
	assert.Equal(t, "8:00 AM", got.NextBestTime)
}

func TestBestPostingTimeWeekend(t *testing.T) {
	// Saturday 3 PM is a weekend peak; 8 AM is not.
	peak := BestPostingTime(time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC))
	assert.True(t, peak.IsGoodTime)

	off := BestPostingTime(time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC))
	assert.False(t, off.IsGoodTime)
	assert.Equal(t, "12:00 PM", off.NextBestTime)
}

func TestBestPostingTimeLateNight(t *testing.T) {
	got := BestPostingTime(time.Date(2026, 8, 24, 22, 0, 0, 0, time.UTC))

	assert.False(t, got.IsGoodTime)
	assert.Equal(t, "Tomorrow 8:00 AM", got.NextBestTime)
}

func TestOptimalPostingTimesCoversWeek(t *testing.T) {
	windows := OptimalPostingTimes()

	assert.Len(t, windows, 7)
	for _, w := range windows {
		assert.NotEmpty(t, w.Times, w.Day)
		assert.Contains(t, []string{"excellent", "good", "moderate"}, w.Quality)
	}
}
