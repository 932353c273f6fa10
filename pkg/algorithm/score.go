package algorithm

import "math"

// SignalWeights are the fixed per-action weights used to reduce a signal
// vector to a single score. Positive weights reward engagement, negative
// weights penalize suppression actions.
type SignalWeights struct {
	Favorite     float64 `json:"favorite"`
	Reply        float64 `json:"reply"`
	Repost       float64 `json:"repost"`
	Quote        float64 `json:"quote"`
	Click        float64 `json:"click"`
	ProfileClick float64 `json:"profile_click"`
	VideoView    float64 `json:"video_view"`
	PhotoExpand  float64 `json:"photo_expand"`
	Share        float64 `json:"share"`
	Dwell        float64 `json:"dwell"`
	FollowAuthor float64 `json:"follow_author"`

	NotInterested float64 `json:"not_interested"`
	BlockAuthor   float64 `json:"block_author"`
	MuteAuthor    float64 `json:"mute_author"`
	Report        float64 `json:"report"`
}

// DefaultWeights returns the standard weight table.
func DefaultWeights() SignalWeights {
	return SignalWeights{
		Favorite:     1.0,
		Reply:        2.5, // conversations matter
		Repost:       3.0, // reposts extend reach significantly
		Quote:        2.8,
		Click:        0.8,
		ProfileClick: 1.5,
		VideoView:    1.2,
		PhotoExpand:  0.6,
		Share:        2.0,
		Dwell:        1.8, // time spent is a quality signal
		FollowAuthor: 4.0, // follows are the ultimate engagement

		NotInterested: -3.0,
		BlockAuthor:   -8.0,
		MuteAuthor:    -5.0,
		Report:        -10.0,
	}
}

// scoreNormalizer maps the raw weighted sum onto the 0-100 scale. Hand
// tuned alongside the weight table; kept as-is for compatibility.
const scoreNormalizer = 15.0

// Score reduces a signal vector to a viral score in [0,100], rounded to
// one decimal place.
func (a *Analyzer) Score(s EngagementSignals) float64 {
	w := a.weights

	raw := w.Favorite*s.Favorite +
		w.Reply*s.Reply +
		w.Repost*s.Repost +
		w.Quote*s.Quote +
		w.Click*s.Click +
		w.ProfileClick*s.ProfileClick +
		w.VideoView*s.VideoView +
		w.PhotoExpand*s.PhotoExpand +
		w.Share*s.Share +
		w.Dwell*s.Dwell +
		w.FollowAuthor*s.FollowAuthor +
		w.NotInterested*s.NotInterested +
		w.BlockAuthor*s.BlockAuthor +
		w.MuteAuthor*s.MuteAuthor +
		w.Report*s.Report

	score := raw / scoreNormalizer * 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return math.Round(score*10) / 10
}

// TierThresholds are the inclusive lower bounds of each tier above low.
type TierThresholds struct {
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
	Viral  float64 `json:"viral"`
}

// DefaultTierThresholds returns the standard tier boundaries.
func DefaultTierThresholds() TierThresholds {
	return TierThresholds{Medium: 35, High: 55, Viral: 75}
}

// TierFor buckets a score into its ordinal tier.
func (a *Analyzer) TierFor(score float64) Tier {
	switch {
	case score >= a.tiers.Viral:
		return TierViral
	case score >= a.tiers.High:
		return TierHigh
	case score >= a.tiers.Medium:
		return TierMedium
	default:
		return TierLow
	}
}
