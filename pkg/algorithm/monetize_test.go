package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectMonetizationZeroFollowers(t *testing.T) {
	got := ProjectMonetization(EngagementSignals{}, 0)

	assert.Equal(t, 0, got.FollowerGrowthPotential)
	assert.Equal(t, 0, got.EngagementBoost)
	assert.Equal(t, 1.0, got.VerifiedReachMultiplier)
}

func TestProjectMonetizationDefaultsFollowProbability(t *testing.T) {
	// Zero follow signal falls back to the 0.01 baseline:
	// 1000 followers * 2 impressions * 0.01 = 20.
	got := ProjectMonetization(EngagementSignals{}, 1000)

	assert.Equal(t, 20, got.FollowerGrowthPotential)
}

func TestProjectMonetizationRepostDrivesReach(t *testing.T) {
	s := EngagementSignals{Favorite: 0.3, Reply: 0.15, Repost: 0.1, FollowAuthor: 0.02}
	got := ProjectMonetization(s, 5000)

	// impressions = 10000 * (1 + 1) = 20000; growth = 20000 * 0.02.
	assert.Equal(t, 400, got.FollowerGrowthPotential)
	// rate = (0.3 + 0.3 + 0.3) / 6 = 0.15.
	assert.Equal(t, 15, got.EngagementBoost)
	assert.InDelta(t, 1.5, got.VerifiedReachMultiplier, 1e-12)
}

func TestProjectMonetizationNegativeFollowersTreatedAsZero(t *testing.T) {
	got := ProjectMonetization(EngagementSignals{Repost: 0.5}, -10)

	assert.Equal(t, 0, got.FollowerGrowthPotential)
}

func TestMonetizationProgress(t *testing.T) {
	progress := MonetizationProgress(Profile{Followers: 250, Premium: true})

	assert.Len(t, progress, 3)

	byID := map[string]ProgramProgress{}
	for _, p := range progress {
		byID[p.Program.ID] = p
	}

	ads := byID["ads-revenue-share"]
	assert.Equal(t, 50.0, ads.FollowerProgress)
	assert.False(t, ads.Eligible)

	tips := byID["tips"]
	assert.Equal(t, 100.0, tips.FollowerProgress)
	assert.True(t, tips.Eligible)
}

func TestMonetizationProgressEligibility(t *testing.T) {
	progress := MonetizationProgress(Profile{
		Followers:   800,
		Impressions: 6_000_000,
		Premium:     true,
	})

	for _, p := range progress {
		assert.True(t, p.Eligible, p.Program.ID)
		assert.Equal(t, 100.0, p.FollowerProgress)
	}
}
