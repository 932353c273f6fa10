package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDeterministic(t *testing.T) {
	a := NewAnalyzer(Tables{})
	text := "Hot take: most productivity advice is procrastination.\n\nWhat's actually worked for you?"

	first := a.Analyze(text, "productivity")
	second := a.Analyze(text, "productivity")

	assert.Equal(t, first, second)
}

func TestAnalyzeBounds(t *testing.T) {
	a := NewAnalyzer(Tables{})

	for _, text := range sampleTexts {
		got := a.Analyze(text, "tech")

		assert.GreaterOrEqual(t, got.ViralScore, 0.0)
		assert.LessOrEqual(t, got.ViralScore, 100.0)
		assert.Contains(t, []Tier{TierLow, TierMedium, TierHigh, TierViral}, got.Tier)
		assert.LessOrEqual(t, len(got.Suggestions), 4)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	a := NewAnalyzer(Tables{})

	got := a.Analyze("", "general")

	require.Equal(t, "", got.Text)
	assert.Equal(t, TierLow, got.Tier)
	assert.NotEmpty(t, got.Suggestions)
	assert.Less(t, got.ViralScore, 10.0)
}

func TestAnalyzeUsesDefaultFollowers(t *testing.T) {
	a := NewAnalyzer(Tables{})

	got := a.Analyze("plain text with no features at all", "general")

	// With 1000 followers the projection is small but non-zero.
	assert.Positive(t, got.MonetizationImpact.FollowerGrowthPotential)
}

func TestAnalyzeStrongPostOutscoresWeakPost(t *testing.T) {
	a := NewAnalyzer(Tables{})

	strong := a.Analyze(
		"Unpopular opinion: most career advice is wrong.\n\n"+
			"Here's what I learned the hard way:\n\n"+
			"1. Skills compound, titles don't\n"+
			"2. Your network is built before you need it\n\n"+
			"What lesson took you too long to learn? Repost to share.",
		"self-improvement",
	)
	weak := a.Analyze("ok", "self-improvement")

	assert.Greater(t, strong.ViralScore, weak.ViralScore)
}
