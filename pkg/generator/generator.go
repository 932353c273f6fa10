// Package generator produces post drafts from the viral template catalog,
// optionally decorated with hook and call-to-action lines, and builds the
// prompts used for AI generation.
package generator

import (
	"math"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/elonfeng/postpulse/pkg/algorithm"
)

// Generation styles.
const (
	StyleEducational   = "educational"
	StyleStory         = "story"
	StyleControversial = "controversial"
	StyleValue         = "value"
	StyleMixed         = "mixed"
)

// Generation tones.
const (
	ToneProfessional  = "professional"
	ToneCasual        = "casual"
	ToneBold          = "bold"
	ToneInspirational = "inspirational"
)

// Config controls a single generation request.
type Config struct {
	Niche       string `json:"niche"`
	Topic       string `json:"topic"`
	Style       string `json:"style"`
	Tone        string `json:"tone"`
	IncludeHook bool   `json:"include_hook"`
	IncludeCTA  bool   `json:"include_cta"`
	MaxLength   int    `json:"max_length"`
}

// Presets returns the quick generation presets.
func Presets() map[string]Config {
	return map[string]Config{
		"viral-thread-hook": {Style: StyleMixed, IncludeHook: true, IncludeCTA: true, MaxLength: 280, Tone: ToneBold},
		"value-bomb":        {Style: StyleValue, IncludeHook: true, IncludeCTA: true, MaxLength: 500, Tone: ToneProfessional},
		"hot-take":          {Style: StyleControversial, IncludeHook: true, IncludeCTA: true, MaxLength: 280, Tone: ToneBold},
		"story-post":        {Style: StyleStory, IncludeHook: true, IncludeCTA: true, MaxLength: 500, Tone: ToneCasual},
		"engagement-bait":   {Style: StyleMixed, IncludeHook: true, IncludeCTA: true, MaxLength: 200, Tone: ToneCasual},
	}
}

// GeneratedPost is the output of one generation run.
type GeneratedPost struct {
	Content    string                 `json:"content"`
	Template   *PostTemplate          `json:"template,omitempty"`
	Analysis   algorithm.PostAnalysis `json:"analysis"`
	Variations []string               `json:"variations"`
}

// Generator builds template-based post drafts. Randomness comes from the
// injected source, so a seeded generator is fully deterministic.
type Generator struct {
	analyzer *algorithm.Analyzer
	rng      *rand.Rand
}

// New creates a generator. A nil rng is seeded from the clock.
func New(analyzer *algorithm.Analyzer, rng *rand.Rand) *Generator {
	if analyzer == nil {
		analyzer = algorithm.NewAnalyzer(algorithm.Tables{})
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{analyzer: analyzer, rng: rng}
}

var topicPlaceholderRe = regexp.MustCompile(`(?i)\[topic\]`)
var nichePlaceholderRe = regexp.MustCompile(`(?i)\[niche\]`)

// FromTemplate interpolates a template's structure with the config's topic
// and niche, attaching a random hook and CTA when requested.
func (g *Generator) FromTemplate(cfg Config, t PostTemplate) string {
	content := topicPlaceholderRe.ReplaceAllString(t.Structure, cfg.Topic)
	content = nichePlaceholderRe.ReplaceAllString(content, cfg.Niche)

	if cfg.IncludeHook {
		hookType := HookCuriosity
		switch cfg.Style {
		case StyleControversial:
			hookType = HookControversy
		case StyleStory:
			hookType = HookStory
		case StyleValue:
			hookType = HookValue
		}
		hook := g.pick(hooks[hookType])
		content = strings.ReplaceAll(hook, "[topic]", cfg.Topic) + "\n\n" + content
	}

	if cfg.IncludeCTA {
		ctaType := CTAShare
		if g.rng.Float64() > 0.5 {
			ctaType = CTAEngagement
		}
		cta := g.pick(callToActions[ctaType])
		content = content + "\n\n" + strings.ReplaceAll(cta, "[topic]", cfg.Topic)
	}

	return content
}

// Variations derives up to count alternates of a draft: a swapped hook, a
// swapped CTA, and a condensed cut.
func (g *Generator) Variations(content string, count int) []string {
	var variations []string

	var lines []string
	for _, l := range strings.Split(content, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}

	hookPool := append(append([]string{}, hooks[HookCuriosity]...), hooks[HookControversy]...)
	if len(lines) > 1 {
		alt := append([]string{g.pick(hookPool)}, lines[1:]...)
		variations = append(variations, strings.Join(alt, "\n\n"))
	}

	ctaPool := append(append(append([]string{}, callToActions[CTAEngagement]...), callToActions[CTAShare]...), callToActions[CTAFollow]...)
	if len(lines) > 1 {
		alt := append(append([]string{}, lines[:len(lines)-1]...), g.pick(ctaPool))
		variations = append(variations, strings.Join(alt, "\n\n"))
	}

	condensed := strings.Join(lines[:int(math.Ceil(float64(len(lines))*0.6))], "\n\n")
	if len(condensed) > 50 {
		variations = append(variations, condensed)
	}

	if len(variations) > count {
		variations = variations[:count]
	}
	return variations
}

// Generate produces a template-based draft for the config, scores it, and
// derives variations. Works without any AI provider configured.
func (g *Generator) Generate(cfg Config) GeneratedPost {
	candidates := TemplatesForNiche(cfg.Niche)
	if len(candidates) == 0 {
		candidates = Templates()
	}

	styled := filterByStyle(candidates, cfg.Style)
	if len(styled) == 0 {
		styled = candidates
	}

	tmpl := styled[g.rng.Intn(len(styled))]
	content := g.FromTemplate(cfg, tmpl)

	return GeneratedPost{
		Content:    content,
		Template:   &tmpl,
		Analysis:   g.analyzer.Analyze(content, cfg.Niche),
		Variations: g.Variations(content, 3),
	}
}

// Analyze scores arbitrary content with the generator's analyzer. Used for
// AI-generated drafts that bypass the template path.
func (g *Generator) Analyze(content, niche string) algorithm.PostAnalysis {
	return g.analyzer.Analyze(content, niche)
}

func filterByStyle(templates []PostTemplate, style string) []PostTemplate {
	var wanted []string
	switch style {
	case StyleControversial:
		wanted = []string{"controversy"}
	case StyleStory:
		wanted = []string{"story"}
	case StyleValue:
		wanted = []string{"value"}
	case StyleEducational:
		wanted = []string{"value", "save-worthy"}
	default:
		return templates
	}

	var out []PostTemplate
	for _, t := range templates {
		if hasAnyFactor(t, wanted) {
			out = append(out, t)
		}
	}
	return out
}

func hasAnyFactor(t PostTemplate, factors []string) bool {
	for _, f := range t.ViralFactors {
		for _, w := range factors {
			if f == w {
				return true
			}
		}
	}
	return false
}

func (g *Generator) pick(options []string) string {
	return options[g.rng.Intn(len(options))]
}
