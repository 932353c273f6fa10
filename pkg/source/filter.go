package source

import "strings"

// DefaultNicheKeywords maps each known niche to the phrases that mark a
// headline as relevant to it.
var DefaultNicheKeywords = map[string][]string{
	"tech": {
		"software", "app", "developer", "programming", "open source",
		"startup", "cloud", "security", "apple", "google", "microsoft",
	},
	"ai": {
		"artificial intelligence", "machine learning", "LLM", "GPT",
		"chatbot", "openai", "anthropic", "claude", "gemini", "AI agent",
		"generative AI", "model release",
	},
	"crypto": {
		"bitcoin", "ethereum", "crypto", "blockchain", "web3", "defi",
		"token", "stablecoin",
	},
	"finance": {
		"stocks", "investing", "interest rate", "inflation", "earnings",
		"market", "fed", "savings",
	},
	"startup": {
		"startup", "founder", "funding", "seed round", "series a",
		"venture", "acquisition", "ipo", "yc",
	},
	"productivity": {
		"productivity", "workflow", "habit", "focus", "time management",
		"tool", "automation",
	},
	"marketing": {
		"marketing", "brand", "growth", "content", "audience", "seo",
		"creator economy", "advertising",
	},
	"fitness": {
		"fitness", "workout", "health", "nutrition", "sleep", "training",
	},
	"politics": {
		"election", "congress", "senate", "policy", "president",
		"legislation", "regulation",
	},
	"entertainment": {
		"movie", "film", "series", "music", "streaming", "box office",
		"celebrity",
	},
	"sports": {
		"game", "season", "championship", "league", "playoffs", "transfer",
		"coach",
	},
}

// Filter scores feed entries against the keyword lists for a set of
// niches.
type Filter struct {
	keywords []string
}

// NewFilter builds a filter covering the given niches plus any extra
// keywords. Unknown niches contribute nothing.
func NewFilter(niches []string, extraKeywords []string) *Filter {
	var keywords []string
	for _, n := range niches {
		for _, kw := range DefaultNicheKeywords[strings.ToLower(n)] {
			keywords = append(keywords, strings.ToLower(kw))
		}
	}
	for _, kw := range extraKeywords {
		keywords = append(keywords, strings.ToLower(kw))
	}
	return &Filter{keywords: keywords}
}

// Relevance counts how many distinct keywords appear in the text. Zero
// means the text matched nothing the filter cares about.
func (f *Filter) Relevance(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, kw := range f.keywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}
