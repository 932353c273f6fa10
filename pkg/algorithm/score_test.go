package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreZeroSignals(t *testing.T) {
	a := NewAnalyzer(Tables{})

	assert.Equal(t, 0.0, a.Score(EngagementSignals{}))
}

func TestScoreClampsToHundred(t *testing.T) {
	a := NewAnalyzer(Tables{})

	// All positive actions at certainty: raw sum 21.2, well past the
	// normalizer.
	s := EngagementSignals{
		Favorite: 1, Reply: 1, Repost: 1, Quote: 1, Click: 1,
		ProfileClick: 1, VideoView: 1, PhotoExpand: 1, Share: 1,
		Dwell: 1, FollowAuthor: 1,
	}

	assert.Equal(t, 100.0, a.Score(s))
}

func TestScoreNegativeSignalsPenalize(t *testing.T) {
	a := NewAnalyzer(Tables{})

	clean := EngagementSignals{Favorite: 0.5, Dwell: 0.5}
	flagged := clean
	flagged.Report = 0.1

	assert.Less(t, a.Score(flagged), a.Score(clean))
}

func TestScoreFloorsAtZero(t *testing.T) {
	a := NewAnalyzer(Tables{})

	assert.Equal(t, 0.0, a.Score(EngagementSignals{Report: 1, BlockAuthor: 1}))
}

func TestScoreRoundsToOneDecimal(t *testing.T) {
	a := NewAnalyzer(Tables{})

	// 0.05 * 2.5 / 15 * 100 = 0.8333...
	assert.Equal(t, 0.8, a.Score(EngagementSignals{Reply: 0.05}))
}

func TestTierBoundaries(t *testing.T) {
	a := NewAnalyzer(Tables{})

	tests := []struct {
		score float64
		want  Tier
	}{
		{0, TierLow},
		{34.9, TierLow},
		{35.0, TierMedium},
		{54.9, TierMedium},
		{55.0, TierHigh},
		{74.9, TierHigh},
		{75.0, TierViral},
		{100, TierViral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, a.TierFor(tt.score), "score %.1f", tt.score)
	}
}

func TestCustomWeightTable(t *testing.T) {
	a := NewAnalyzer(Tables{Weights: SignalWeights{Favorite: 15}})

	assert.Equal(t, 50.0, a.Score(EngagementSignals{Favorite: 0.5, Reply: 1}))
}
