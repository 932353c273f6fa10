package algorithm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleTexts = []string{
	"",
	"short",
	"What's the one tool you can't work without?",
	"Unpopular opinion: most advice is wrong.\n\n1. Point one\n2. Point two\n\nRepost to share.",
	"3 years ago I was broke. Here's the lesson that changed everything. Follow for more.",
	strings.Repeat("a very long post ", 200),
}

func TestPredictSignalsBounded(t *testing.T) {
	a := NewAnalyzer(Tables{})

	for _, text := range sampleTexts {
		for _, niche := range []string{"general", "ai", "politics", "nope"} {
			s := a.PredictSignals(niche, ExtractFeatures(text))

			for name, v := range map[string]float64{
				"favorite":       s.Favorite,
				"reply":          s.Reply,
				"repost":         s.Repost,
				"quote":          s.Quote,
				"click":          s.Click,
				"profile_click":  s.ProfileClick,
				"video_view":     s.VideoView,
				"photo_expand":   s.PhotoExpand,
				"share":          s.Share,
				"dwell":          s.Dwell,
				"follow_author":  s.FollowAuthor,
				"not_interested": s.NotInterested,
				"block_author":   s.BlockAuthor,
				"mute_author":    s.MuteAuthor,
				"report":         s.Report,
			} {
				assert.GreaterOrEqual(t, v, 0.0, "%s for %q", name, text)
				assert.LessOrEqual(t, v, 1.0, "%s for %q", name, text)
			}
		}
	}
}

func TestQuestionRaisesReplySignal(t *testing.T) {
	a := NewAnalyzer(Tables{})

	// Mid-length post with a question mark and a list marker.
	base := strings.Repeat("x", 120) + "\n1. first item here ugh"
	withQuestion := base + "?"

	fq := ExtractFeatures(withQuestion)
	assert.True(t, fq.HasQuestion)
	assert.True(t, fq.HasList)

	sq := a.PredictSignals("tech", fq)
	sp := a.PredictSignals("tech", ExtractFeatures(base))

	assert.Greater(t, sq.Reply, sp.Reply)
}

func TestUnknownNicheFallsBackToGeneral(t *testing.T) {
	a := NewAnalyzer(Tables{})
	f := ExtractFeatures("How to write posts people actually read. Follow for more.")

	assert.Equal(t, a.PredictSignals("general", f), a.PredictSignals("underwater-basket-weaving", f))
}

func TestDerivedSignals(t *testing.T) {
	a := NewAnalyzer(Tables{})
	s := a.PredictSignals("general", ExtractFeatures("a perfectly ordinary post about nothing much at all"))

	assert.Equal(t, 0.1, s.Click)
	assert.InDelta(t, s.Repost*0.3, s.Share, 1e-12)
	assert.Zero(t, s.VideoView)
	assert.Zero(t, s.PhotoExpand)
}

func TestNegativeSignalBaselines(t *testing.T) {
	a := NewAnalyzer(Tables{})

	plain := a.PredictSignals("general", ExtractFeatures("just vibes"))
	assert.Equal(t, 0.05, plain.NotInterested)
	assert.Equal(t, 0.001, plain.BlockAuthor)
	assert.Equal(t, 0.002, plain.MuteAuthor)
	assert.Equal(t, 0.0005, plain.Report)

	value := a.PredictSignals("general", ExtractFeatures("how to do the thing"))
	assert.Equal(t, 0.02, value.NotInterested)
}

func TestLengthFactor(t *testing.T) {
	assert.Equal(t, 0.0, lengthFactor(0))
	assert.Equal(t, 0.5, lengthFactor(100))
	assert.Equal(t, 1.0, lengthFactor(200))
	assert.Equal(t, 1.0, lengthFactor(280))
	assert.InDelta(t, 0.9, lengthFactor(380), 1e-12)
	assert.Equal(t, 0.5, lengthFactor(2000))
	assert.Equal(t, 0.5, lengthFactor(100000))
}
