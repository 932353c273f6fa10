package algorithm

import "strings"

// NicheMultipliers scale the base engagement probabilities for a content
// category. The general niche is the 1.0 baseline.
type NicheMultipliers struct {
	Engagement      float64 `json:"engagement"`
	Conversation    float64 `json:"conversation"`
	Shareability    float64 `json:"shareability"`
	FollowPotential float64 `json:"follow_potential"`
}

// DefaultNicheMultipliers returns the multiplier table for the 13 known
// niches.
func DefaultNicheMultipliers() map[string]NicheMultipliers {
	return map[string]NicheMultipliers{
		"tech":             {Engagement: 1.2, Conversation: 1.3, Shareability: 1.4, FollowPotential: 1.3},
		"ai":               {Engagement: 1.4, Conversation: 1.5, Shareability: 1.6, FollowPotential: 1.5},
		"crypto":           {Engagement: 1.3, Conversation: 1.6, Shareability: 1.3, FollowPotential: 1.2},
		"finance":          {Engagement: 1.2, Conversation: 1.2, Shareability: 1.3, FollowPotential: 1.4},
		"startup":          {Engagement: 1.3, Conversation: 1.4, Shareability: 1.5, FollowPotential: 1.4},
		"productivity":     {Engagement: 1.4, Conversation: 1.1, Shareability: 1.7, FollowPotential: 1.5},
		"self-improvement": {Engagement: 1.5, Conversation: 1.2, Shareability: 1.8, FollowPotential: 1.6},
		"marketing":        {Engagement: 1.3, Conversation: 1.3, Shareability: 1.5, FollowPotential: 1.4},
		"fitness":          {Engagement: 1.4, Conversation: 1.1, Shareability: 1.4, FollowPotential: 1.3},
		"politics":         {Engagement: 1.6, Conversation: 2.0, Shareability: 1.2, FollowPotential: 1.1},
		"entertainment":    {Engagement: 1.5, Conversation: 1.3, Shareability: 1.4, FollowPotential: 1.2},
		"sports":           {Engagement: 1.4, Conversation: 1.5, Shareability: 1.3, FollowPotential: 1.2},
		"general":          {Engagement: 1.0, Conversation: 1.0, Shareability: 1.0, FollowPotential: 1.0},
	}
}

// Niche describes a content category for presentation purposes.
type Niche struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Niches returns the catalog of known content categories.
func Niches() []Niche {
	return []Niche{
		{ID: "tech", Name: "Tech", Description: "Software, apps, and technology trends"},
		{ID: "ai", Name: "AI/ML", Description: "Artificial intelligence and machine learning"},
		{ID: "crypto", Name: "Crypto/Web3", Description: "Cryptocurrency and blockchain"},
		{ID: "finance", Name: "Finance", Description: "Money, investing, and financial advice"},
		{ID: "startup", Name: "Startups", Description: "Entrepreneurship and building companies"},
		{ID: "productivity", Name: "Productivity", Description: "Efficiency, tools, and workflows"},
		{ID: "self-improvement", Name: "Self-Improvement", Description: "Personal growth and mindset"},
		{ID: "marketing", Name: "Marketing", Description: "Growth, content, and marketing strategy"},
		{ID: "fitness", Name: "Fitness", Description: "Health, fitness, and wellness"},
		{ID: "politics", Name: "Politics", Description: "Political commentary and news"},
		{ID: "entertainment", Name: "Entertainment", Description: "Movies, TV, music, and pop culture"},
		{ID: "sports", Name: "Sports", Description: "Sports news and commentary"},
		{ID: "general", Name: "General", Description: "Broad appeal content"},
	}
}

// nicheMultipliers resolves a niche id case-insensitively, falling back to
// the general baseline for anything unknown.
func (a *Analyzer) nicheMultipliers(niche string) NicheMultipliers {
	if m, ok := a.niches[strings.ToLower(niche)]; ok {
		return m
	}
	if m, ok := a.niches["general"]; ok {
		return m
	}
	return NicheMultipliers{Engagement: 1, Conversation: 1, Shareability: 1, FollowPotential: 1}
}
