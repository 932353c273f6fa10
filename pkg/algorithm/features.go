package algorithm

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ContentFeatures describes the lexical cues found in a post's text.
type ContentFeatures struct {
	HasQuestion     bool `json:"has_question"`
	HasHook         bool `json:"has_hook"`
	HasCallToAction bool `json:"has_call_to_action"`
	HasList         bool `json:"has_list"`
	HasControversy  bool `json:"has_controversy"`
	HasStory        bool `json:"has_story"`
	HasValue        bool `json:"has_value"`
	HasEmoji        bool `json:"has_emoji"`
	HasMedia        bool `json:"has_media"`

	CharCount     int `json:"char_count"`
	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`
	ReadingTime   int `json:"reading_time"` // minutes
}

var (
	questionRe    = regexp.MustCompile(`\?`)
	hookRe        = regexp.MustCompile(`(?i)^(here's|this is|the truth|i |thread|breaking|unpopular opinion|hot take|controversial)`)
	ctaRe         = regexp.MustCompile(`(?i)(follow|repost|like|share|comment|reply|bookmark|check out|click|subscribe)`)
	listRe        = regexp.MustCompile(`(\d+\.|•|-|\*)\s`)
	controversyRe = regexp.MustCompile(`(?i)(unpopular|controversial|hot take|most people|nobody talks|secret|truth is)`)
	storyRe       = regexp.MustCompile(`(?i)(i was|i had|i used to|years ago|last week|yesterday|story|happened)`)
	valueRe       = regexp.MustCompile(`(?i)(how to|tips|guide|learn|hack|secret|mistake|lesson|strategy|framework)`)
	emojiRe       = regexp.MustCompile(`[\x{1F300}-\x{1F9FF}\x{2600}-\x{26FF}]`)
	sentenceRe    = regexp.MustCompile(`[.!?]+`)
)

// ExtractFeatures pattern-matches a post's text against the fixed cue set.
// Total over all inputs: an empty string yields all-false/zero features.
func ExtractFeatures(text string) ContentFeatures {
	words := strings.Fields(text)

	sentences := 0
	for _, seg := range sentenceRe.Split(text, -1) {
		if strings.TrimSpace(seg) != "" {
			sentences++
		}
	}

	return ContentFeatures{
		HasQuestion:     questionRe.MatchString(text),
		HasHook:         hookRe.MatchString(text),
		HasCallToAction: ctaRe.MatchString(text),
		HasList:         listRe.MatchString(text) || strings.Contains(text, "\n"),
		HasControversy:  controversyRe.MatchString(text),
		HasStory:        storyRe.MatchString(text),
		HasValue:        valueRe.MatchString(text),
		HasEmoji:        emojiRe.MatchString(text),
		HasMedia:        false, // text-only input, no media indicator available

		CharCount:     utf8.RuneCountInString(text),
		WordCount:     len(words),
		SentenceCount: sentences,
		ReadingTime:   int(math.Ceil(float64(len(words)) / 200)),
	}
}
