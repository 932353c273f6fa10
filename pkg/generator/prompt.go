package generator

import (
	"fmt"
	"strings"
)

var stylePrompts = map[string]string{
	StyleEducational:   "Create an educational post that teaches something valuable. Focus on actionable insights, clear explanations, and practical takeaways. Make it easy to understand and implement.",
	StyleStory:         "Create a story-driven post with a personal or narrative element. Include a hook, build tension or curiosity, and end with a clear lesson or insight. Make it relatable and emotionally engaging.",
	StyleControversial: "Create a thought-provoking post that challenges conventional wisdom. Take a clear stance, support it with reasoning, and invite discussion. Be bold but substantive.",
	StyleValue:         "Create a high-value post packed with actionable information. Use lists, frameworks, or step-by-step breakdowns. Make it saveable and shareable.",
	StyleMixed:         "Create an engaging post that balances value with personality. Include a hook, deliver insights, and encourage engagement. Make it both useful and interesting.",
}

var toneModifiers = map[string]string{
	ToneProfessional:  "Use a professional, authoritative tone. Be clear and credible.",
	ToneCasual:        "Use a conversational, friendly tone. Be approachable and relatable.",
	ToneBold:          "Use a confident, assertive tone. Be direct and unapologetic.",
	ToneInspirational: "Use an uplifting, motivational tone. Be encouraging and positive.",
}

// BuildPrompt assembles the instruction sent to an AI provider for a
// generation request. A non-nil template adds its structure as a scaffold.
func BuildPrompt(cfg Config, tmpl *PostTemplate) string {
	style, ok := stylePrompts[cfg.Style]
	if !ok {
		style = stylePrompts[StyleMixed]
	}
	tone, ok := toneModifiers[cfg.Tone]
	if !ok {
		tone = toneModifiers[ToneCasual]
	}

	maxLength := cfg.MaxLength
	if maxLength <= 0 {
		maxLength = 280
	}

	var b strings.Builder

	fmt.Fprintf(&b, `You are an expert social media content creator focused on growing followers and engagement.

TASK: Generate a viral post about %q in the %q niche.

STYLE: %s

TONE: %s

CONSTRAINTS:
- Maximum %d characters
- Write in short-post format
- Focus on engagement (replies, reposts, follows)
- Make it feel authentic, not like AI wrote it
`, cfg.Topic, cfg.Niche, style, tone, maxLength)

	if cfg.IncludeHook {
		b.WriteString("- Start with a strong hook that stops the scroll\n")
	}
	if cfg.IncludeCTA {
		b.WriteString("- End with a call-to-action that drives engagement\n")
	}

	b.WriteString(`
RANKING OPTIMIZATION:
The feed algorithm prioritizes:
1. Reply rate (ask questions, be controversial, invite discussion)
2. Repost rate (be valuable, shareable, save-worthy)
3. Dwell time (make them read the whole thing)
4. Follow rate (show expertise, personality, value)

VIRAL FACTORS TO INCLUDE:
- Strong opening hook (first line is critical)
- Clear value proposition
- Emotional resonance (curiosity, inspiration, controversy)
- Conversation starter (question or debate point)
`)

	if tmpl != nil {
		fmt.Fprintf(&b, `
TEMPLATE TO FOLLOW:
Name: %s
Structure:
%s

Example for reference:
%s

Adapt this template to the topic while maintaining the viral structure.
`, tmpl.Name, tmpl.Structure, tmpl.Example)
	}

	b.WriteString("\nOUTPUT: Write only the post content. No explanations or meta-commentary. Just the post itself.\n")

	return b.String()
}
