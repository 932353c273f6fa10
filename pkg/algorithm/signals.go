package algorithm

// EngagementSignals holds the predicted probability of each engagement
// action. Every field lies in [0,1]; stages that do not compute a field
// leave it at zero, which downstream consumers treat as "no signal".
type EngagementSignals struct {
	// Positive actions.
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

	// Negative actions, penalized at scoring time.
	NotInterested float64 `json:"not_interested"`
	BlockAuthor   float64 `json:"block_author"`
	MuteAuthor    float64 `json:"mute_author"`
	Report        float64 `json:"report"`
}

// PredictSignals maps content features and a niche to engagement-action
// probabilities. Base rates are scaled by the features present, by a
// length-sensitivity factor, and by the niche multipliers, then clamped
// to 1. Unknown niches fall back to the general multipliers.
func (a *Analyzer) PredictSignals(niche string, f ContentFeatures) EngagementSignals {
	favorite := 0.15
	reply := 0.05
	repost := 0.03
	quote := 0.02
	dwell := 0.3
	follow := 0.01
	profileClick := 0.08

	if f.HasQuestion {
		reply *= 2.5 // questions drive replies
		dwell *= 1.3
	}
	if f.HasHook {
		dwell *= 1.5 // hooks increase reading time
		favorite *= 1.3
	}
	if f.HasCallToAction {
		repost *= 1.8
		follow *= 1.5
	}
	if f.HasList {
		repost *= 1.6 // lists are highly shareable
		dwell *= 1.4
		favorite *= 1.4
	}
	if f.HasControversy {
		reply *= 3.0 // controversy drives engagement
		quote *= 2.5
		dwell *= 1.5
	}
	if f.HasStory {
		dwell *= 2.0 // stories keep attention
		favorite *= 1.5
		follow *= 1.8
	}
	if f.HasValue {
		repost *= 2.5 // value content gets shared
		follow *= 2.0
		favorite *= 1.6
	}

	length := lengthFactor(f.CharCount)
	favorite *= length
	repost *= length

	m := a.nicheMultipliers(niche)

	s := EngagementSignals{
		Favorite:     clamp01(favorite * m.Engagement),
		Reply:        clamp01(reply * m.Conversation),
		Repost:       clamp01(repost * m.Shareability),
		Quote:        clamp01(quote * m.Conversation),
		Dwell:        clamp01(dwell),
		FollowAuthor: clamp01(follow * m.FollowPotential),
		ProfileClick: clamp01(profileClick * m.FollowPotential),
		Click:        0.1,
	}
	s.Share = s.Repost * 0.3

	// Negative signals are near-constant baselines; only value content
	// lowers the not-interested rate.
	if f.HasValue {
		s.NotInterested = 0.02
	} else {
		s.NotInterested = 0.05
	}
	s.BlockAuthor = 0.001
	s.MuteAuthor = 0.002
	s.Report = 0.0005

	return s
}

// lengthFactor scales engagement by post length: linear ramp up to 200
// chars, flat through the 280-char sweet spot, then linear decay floored
// at 0.5.
func lengthFactor(chars int) float64 {
	if chars <= 280 {
		return min(float64(chars)/200, 1)
	}
	return max(0.5, 1-float64(chars-280)/1000)
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
