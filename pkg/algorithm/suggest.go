package algorithm

// maxSuggestions caps the number of improvement hints per analysis.
const maxSuggestions = 4

// SuggestionRule pairs a condition with the hint to emit when it holds.
// Rules are evaluated in order and truncated to maxSuggestions matches.
type SuggestionRule struct {
	Match   func(ContentFeatures, EngagementSignals) bool
	Message string
}

// DefaultSuggestionRules returns the ordered rule list.
func DefaultSuggestionRules() []SuggestionRule {
	return []SuggestionRule{
		{
			Match:   func(f ContentFeatures, _ EngagementSignals) bool { return !f.HasHook },
			Message: "Add a strong hook in the first line to capture attention",
		},
		{
			Match: func(f ContentFeatures, s EngagementSignals) bool {
				return !f.HasQuestion && s.Reply < 0.1
			},
			Message: "Include a question to drive replies - replies boost algorithmic ranking",
		},
		{
			Match:   func(f ContentFeatures, _ EngagementSignals) bool { return !f.HasValue },
			Message: "Add actionable value (tips, insights, lessons) to increase shares",
		},
		{
			Match:   func(f ContentFeatures, _ EngagementSignals) bool { return !f.HasCallToAction },
			Message: `Add a subtle call-to-action (e.g., "Follow for more" or "Repost if useful")`,
		},
		{
			Match:   func(f ContentFeatures, _ EngagementSignals) bool { return f.CharCount < 100 },
			Message: "Expand your post - slightly longer posts (150-280 chars) perform better",
		},
		{
			Match: func(f ContentFeatures, _ EngagementSignals) bool {
				return f.CharCount > 500 && !f.HasList
			},
			Message: "Break up long text with line breaks or bullet points for better dwell time",
		},
		{
			Match: func(f ContentFeatures, s EngagementSignals) bool {
				return !f.HasStory && s.FollowAuthor < 0.02
			},
			Message: "Add a personal story element to build connection and drive follows",
		},
		{
			Match:   func(_ ContentFeatures, s EngagementSignals) bool { return s.Repost < 0.05 },
			Message: "Make the post more shareable - lists, frameworks, and contrarian takes get reposted",
		},
	}
}

// Suggestions evaluates the rule list against a post's features and
// signals. An empty result means the post already hits every cue.
func (a *Analyzer) Suggestions(f ContentFeatures, s EngagementSignals) []string {
	var out []string
	for _, rule := range a.rules {
		if rule.Match(f, s) {
			out = append(out, rule.Message)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}
