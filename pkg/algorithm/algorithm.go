// Package algorithm scores a social post against a heuristic engagement
// model: content features are extracted from the text, mapped to predicted
// engagement-action probabilities, and reduced to a single 0-100 viral
// score with an ordinal tier, improvement suggestions, and a monetization
// projection.
package algorithm

// Tier buckets a viral score into an ordinal category.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
	TierViral  Tier = "viral"
)

// PostAnalysis is the full result of scoring one post.
type PostAnalysis struct {
	Text               string             `json:"text"`
	Signals            EngagementSignals  `json:"signals"`
	ViralScore         float64            `json:"viral_score"`
	Tier               Tier               `json:"tier"`
	Suggestions        []string           `json:"suggestions"`
	MonetizationImpact MonetizationImpact `json:"monetization_impact"`
}

// Tables bundles the lookup data the analyzer scores against. All fields
// are optional; zero values fall back to the built-in defaults.
type Tables struct {
	Weights SignalWeights
	Niches  map[string]NicheMultipliers
	Tiers   TierThresholds
	Rules   []SuggestionRule
}

// DefaultTables returns the standard weight, niche, tier, and rule tables.
func DefaultTables() Tables {
	return Tables{
		Weights: DefaultWeights(),
		Niches:  DefaultNicheMultipliers(),
		Tiers:   DefaultTierThresholds(),
		Rules:   DefaultSuggestionRules(),
	}
}

// DefaultFollowers is assumed for monetization projections when the caller
// does not supply a follower count.
const DefaultFollowers = 1000

// Analyzer runs the scoring pipeline. It holds only immutable lookup
// tables, so a single instance is safe for concurrent use.
type Analyzer struct {
	weights SignalWeights
	niches  map[string]NicheMultipliers
	tiers   TierThresholds
	rules   []SuggestionRule
}

// NewAnalyzer creates an analyzer from the given tables. Zero-valued
// fields fall back to the defaults.
func NewAnalyzer(t Tables) *Analyzer {
	if t.Weights == (SignalWeights{}) {
		t.Weights = DefaultWeights()
	}
	if t.Niches == nil {
		t.Niches = DefaultNicheMultipliers()
	}
	if t.Tiers == (TierThresholds{}) {
		t.Tiers = DefaultTierThresholds()
	}
	if t.Rules == nil {
		t.Rules = DefaultSuggestionRules()
	}
	return &Analyzer{
		weights: t.Weights,
		niches:  t.Niches,
		tiers:   t.Tiers,
		rules:   t.Rules,
	}
}

// Analyze runs the full pipeline on a post. It is total: any text and any
// niche string produce a result, never an error.
func (a *Analyzer) Analyze(text, niche string) PostAnalysis {
	features := ExtractFeatures(text)
	signals := a.PredictSignals(niche, features)
	score := a.Score(signals)

	return PostAnalysis{
		Text:               text,
		Signals:            signals,
		ViralScore:         score,
		Tier:               a.TierFor(score),
		Suggestions:        a.Suggestions(features, signals),
		MonetizationImpact: ProjectMonetization(signals, DefaultFollowers),
	}
}
