package algorithm

import "math"

// MonetizationImpact estimates the downstream growth effect of one post.
type MonetizationImpact struct {
	FollowerGrowthPotential int     `json:"follower_growth_potential"`
	EngagementBoost         int     `json:"engagement_boost"` // percent
	VerifiedReachMultiplier float64 `json:"verified_reach_multiplier"`
}

// ProjectMonetization estimates follower growth and reach from a signal
// vector and the author's current follower count. A zero follow signal
// falls back to a 0.01 baseline probability.
func ProjectMonetization(s EngagementSignals, followers int) MonetizationImpact {
	if followers < 0 {
		followers = 0
	}

	followProbability := s.FollowAuthor
	if followProbability == 0 {
		followProbability = 0.01
	}

	engagementRate := (s.Favorite + s.Reply*2 + s.Repost*3) / 6

	baseImpressions := float64(followers) * 2
	viralMultiplier := 1 + s.Repost*10
	estimatedImpressions := baseImpressions * viralMultiplier

	return MonetizationImpact{
		FollowerGrowthPotential: int(math.Round(estimatedImpressions * followProbability)),
		EngagementBoost:         int(math.Round(engagementRate * 100)),
		VerifiedReachMultiplier: 1 + s.Repost*5,
	}
}

// MonetizationProgram is a creator-monetization track and its entry
// requirements. Reference data for progress display only.
type MonetizationProgram struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	MinFollowers      int    `json:"min_followers"`
	RequiresPremium   bool   `json:"requires_premium"`
	ImpressionsNeeded int64  `json:"impressions_needed"` // trailing 3 months
	PotentialEarnings string `json:"potential_earnings"`
}

// MonetizationPrograms returns the known monetization tracks.
func MonetizationPrograms() []MonetizationProgram {
	return []MonetizationProgram{
		{
			ID:                "ads-revenue-share",
			Name:              "Ads Revenue Share",
			MinFollowers:      500,
			RequiresPremium:   true,
			ImpressionsNeeded: 5_000_000,
			PotentialEarnings: "$500-$5,000/month",
		},
		{
			ID:                "subscriptions",
			Name:              "Subscriptions",
			MinFollowers:      500,
			RequiresPremium:   true,
			PotentialEarnings: "Variable based on subscriber count",
		},
		{
			ID:                "tips",
			Name:              "Tips",
			MinFollowers:      0,
			PotentialEarnings: "Variable",
		},
	}
}

// Profile is the author-side input for monetization progress.
type Profile struct {
	Followers   int   `json:"followers"`
	Impressions int64 `json:"impressions"` // trailing 3 months
	Premium     bool  `json:"premium"`
}

// ProgramProgress reports how close a profile is to one program's bar.
type ProgramProgress struct {
	Program          MonetizationProgram `json:"program"`
	FollowerProgress float64             `json:"follower_progress"` // 0-100
	Eligible         bool                `json:"eligible"`
}

// MonetizationProgress computes per-program eligibility and follower
// progress for a profile.
func MonetizationProgress(p Profile) []ProgramProgress {
	programs := MonetizationPrograms()
	out := make([]ProgramProgress, 0, len(programs))

	for _, prog := range programs {
		progress := 100.0
		if prog.MinFollowers > 0 {
			progress = math.Min(float64(p.Followers)/float64(prog.MinFollowers)*100, 100)
		}

		eligible := p.Followers >= prog.MinFollowers
		if prog.RequiresPremium && !p.Premium {
			eligible = false
		}
		if prog.ImpressionsNeeded > 0 && p.Impressions < prog.ImpressionsNeeded {
			eligible = false
		}

		out = append(out, ProgramProgress{
			Program:          prog,
			FollowerProgress: math.Round(progress*10) / 10,
			Eligible:         eligible,
		})
	}
	return out
}
