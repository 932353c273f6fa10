package generator

// PostTemplate is a proven post structure with an example and the niches
// it works best in.
type PostTemplate struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Structure    string   `json:"structure"`
	Example      string   `json:"example"`
	ViralFactors []string `json:"viral_factors"`
	BestFor      []string `json:"best_for"`
}

// Templates returns the built-in viral template catalog.
func Templates() []PostTemplate {
	return viralTemplates
}

var viralTemplates = []PostTemplate{
	{
		ID:          "contrarian-insight",
		Name:        "Contrarian Insight",
		Description: "Challenge conventional wisdom with a fresh perspective",
		Structure: "Unpopular opinion: [contrarian take]\n\nHere's why:\n\n" +
			"[3 supporting points]\n\n[Call to action or question]",
		Example: "Unpopular opinion: Working 80-hour weeks doesn't make you successful.\n\n" +
			"Here's why:\n\n" +
			"1. Burnout kills creativity\n" +
			"2. Rest is where breakthrough ideas happen\n" +
			"3. The most successful people I know protect their energy\n\n" +
			"What's the hardest lesson you've learned about work-life balance?",
		ViralFactors: []string{"controversy", "reply-bait", "relatability"},
		BestFor:      []string{"self-improvement", "startup", "productivity", "career"},
	},
	{
		ID:          "story-lesson",
		Name:        "Story + Lesson",
		Description: "Personal story that leads to a valuable insight",
		Structure: "[Time marker] I [situation].\n\n[What happened]\n\n[The turning point]\n\n" +
			"The lesson: [Key takeaway]\n\n[Follow CTA]",
		Example: "3 years ago I was broke, burned out, and ready to quit.\n\n" +
			"My startup had failed. My savings were gone. I felt like a fraud.\n\n" +
			"Then I got a DM that changed everything.\n\n" +
			"The lesson: Your lowest point is often the setup for your greatest comeback.\n\n" +
			"Follow for more founder stories.",
		ViralFactors: []string{"emotional-hook", "story", "follow-bait", "relatability"},
		BestFor:      []string{"startup", "self-improvement", "finance", "general"},
	},
	{
		ID:          "listicle-value",
		Name:        "Value Listicle",
		Description: "Numbered list of actionable tips or insights",
		Structure: "[Number] [topic] that [benefit]:\n\n1. [Point 1]\n2. [Point 2]\n3. [Point 3]\n...\n\n" +
			"Repost to help others. Follow for more.",
		Example: "7 free tools that replaced my $500/month subscriptions:\n\n" +
			"1. Notion -> replaced Asana\n" +
			"2. Canva -> replaced Adobe\n" +
			"3. Loom -> replaced Zoom recordings\n" +
			"4. Calendly free -> replaced scheduling tools\n" +
			"5. ChatGPT -> replaced Jasper\n" +
			"6. Figma -> replaced Sketch\n" +
			"7. Webflow -> replaced custom dev\n\n" +
			"Repost to help others save money. Follow for more free alternatives.",
		ViralFactors: []string{"value", "list-format", "shareability", "save-worthy"},
		BestFor:      []string{"tech", "productivity", "marketing", "startup"},
	},
	{
		ID:          "thread-hook",
		Name:        "Thread Hook",
		Description: "Compelling opening for a thread",
		Structure: "I [impressive result] in [timeframe].\n\nHere's exactly how (thread):\n\n" +
			"[Hint at value]\n\n[Promise specific takeaways]",
		Example: "I grew from 0 to 100K followers in 6 months.\n\n" +
			"Here's exactly how (thread):\n\n" +
			"No paid ads. No follow-for-follow schemes. Just strategy.\n\n" +
			"I'm breaking down my entire playbook, including the posts that went viral.",
		ViralFactors: []string{"curiosity-gap", "social-proof", "value-promise"},
		BestFor:      []string{"marketing", "startup", "self-improvement", "general"},
	},
	{
		ID:          "prediction",
		Name:        "Bold Prediction",
		Description: "Make a forward-looking statement that sparks debate",
		Structure: "Prediction: [Bold statement about future]\n\nWhy I believe this:\n\n" +
			"• [Reason 1]\n• [Reason 2]\n• [Reason 3]\n\nAgree or disagree?",
		Example: "Prediction: 50% of current SaaS companies will be replaced by AI agents within 3 years.\n\n" +
			"Why I believe this:\n\n" +
			"• AI can now handle entire workflows\n" +
			"• Usage-based pricing beats subscription\n" +
			"• Agents don't need onboarding\n\n" +
			"Agree or disagree?",
		ViralFactors: []string{"controversy", "reply-bait", "thought-leadership"},
		BestFor:      []string{"tech", "ai", "startup", "finance", "crypto"},
	},
	{
		ID:          "mistake-learnings",
		Name:        "Mistakes I Made",
		Description: "Vulnerable sharing of failures and lessons",
		Structure: "[Number] mistakes I made [context]:\n\n1. [Mistake + why it was wrong]\n" +
			"2. [Mistake + why it was wrong]\n3. [Mistake + why it was wrong]\n\nDon't repeat my errors.",
		Example: "5 mistakes I made building my first startup:\n\n" +
			"1. Building for 6 months without talking to customers\n" +
			"2. Raising money before finding product-market fit\n" +
			"3. Hiring friends instead of A-players\n" +
			"4. Ignoring unit economics\n" +
			"5. Not taking care of my health\n\n" +
			"Don't repeat my errors. Learn from mine instead.",
		ViralFactors: []string{"vulnerability", "value", "relatability", "save-worthy"},
		BestFor:      []string{"startup", "career", "self-improvement", "finance"},
	},
	{
		ID:          "framework",
		Name:        "Framework Share",
		Description: "Share a mental model or framework",
		Structure: "The [Name] Framework:\n\nMost people [common approach].\n\n" +
			"Top performers [different approach].\n\nHere's the difference:\n\n[Visual or steps explanation]",
		Example: "The 5-3-1 Content Framework:\n\n" +
			"Most creators post randomly and hope for the best.\n\n" +
			"Top creators follow a system:\n\n" +
			"5 = Give value (tips, insights, resources)\n" +
			"3 = Build connection (stories, opinions)\n" +
			"1 = Ask (CTA, promotion)\n\n" +
			"This ratio builds trust AND grows followers.",
		ViralFactors: []string{"value", "save-worthy", "shareability", "thought-leadership"},
		BestFor:      []string{"marketing", "productivity", "startup", "self-improvement"},
	},
	{
		ID:          "observation",
		Name:        "Sharp Observation",
		Description: "Point out something others haven't noticed",
		Structure: "I've noticed something about [topic]:\n\n[Observation]\n\n" +
			"[Evidence or examples]\n\n[Conclusion or question]",
		Example: "I've noticed something about viral tweets:\n\n" +
			"They don't teach you anything new.\n\n" +
			"They remind you of something you already knew but forgot.\n\n" +
			"The best content isn't novel. It's resonant.\n\n" +
			`What "obvious" truths do you keep forgetting?`,
		ViralFactors: []string{"insight", "reply-bait", "relatability", "thought-leadership"},
		BestFor:      []string{"marketing", "self-improvement", "general", "startup"},
	},
	{
		ID:          "before-after",
		Name:        "Before/After Transformation",
		Description: "Show contrast between two states",
		Structure: "[Time] ago: [Before state]\nToday: [After state]\n\nWhat changed:\n\n" +
			"[Key changes in bullet points]\n\n[Lesson or CTA]",
		Example: "2 years ago: Making $4K/month at my 9-5\n" +
			"Today: Making $40K/month from my laptop\n\n" +
			"What changed:\n\n" +
			"• Started posting daily\n" +
			"• Built an email list\n" +
			"• Launched a digital product\n" +
			"• Quit my job\n\n" +
			"The internet is the best equalizer. Start today.",
		ViralFactors: []string{"transformation", "aspiration", "social-proof", "curiosity"},
		BestFor:      []string{"finance", "self-improvement", "startup", "marketing"},
	},
	{
		ID:          "curated-list",
		Name:        "Curated Resources",
		Description: "Collection of valuable resources",
		Structure: "[Number] [resources] every [audience] should [action]:\n\n" +
			"1. [Resource] - [why]\n2. [Resource] - [why]\n...\n\nBookmark this. Repost to share.",
		Example: "10 newsletters every founder should subscribe to:\n\n" +
			"1. @lennysan - product insights\n" +
			"2. @sloaneking - startup operations\n" +
			"3. @pacaborman - fintech trends\n" +
			"4. @turnernovak - VC perspective\n" +
			"5. @profgalloway - market analysis\n\n" +
			"Bookmark this. Repost to share with founder friends.",
		ViralFactors: []string{"value", "save-worthy", "shareability", "list-format"},
		BestFor:      []string{"tech", "startup", "marketing", "finance", "productivity"},
	},
}

// Hook categories for opening lines.
const (
	HookCuriosity   = "curiosity"
	HookControversy = "controversy"
	HookStory       = "story"
	HookValue       = "value"
	HookSocialProof = "social_proof"
)

var hooks = map[string][]string{
	HookCuriosity: {
		"Here's something nobody talks about:",
		"I spent 100 hours researching this so you don't have to:",
		"The truth about [topic] that experts won't tell you:",
		"I was wrong about [topic]. Here's what changed my mind:",
		"After [impressive number], here's what I learned:",
	},
	HookControversy: {
		"Unpopular opinion:",
		"Hot take:",
		"This will be controversial but:",
		"I'll probably get hate for this:",
		"Most people get this completely wrong:",
	},
	HookStory: {
		"[Time] ago, I [dramatic situation].",
		"I still remember the day [pivotal moment].",
		"Nobody believed me when I said [prediction].",
		"I failed at [thing] for [time]. Then [change].",
		"The worst advice I ever got was [advice].",
	},
	HookValue: {
		"[Number] things I wish I knew about [topic]:",
		"The [topic] cheat sheet:",
		"How to [achieve result] (step by step):",
		"The [framework name] framework changed my [area]:",
		"I've [done impressive thing]. Here's my playbook:",
	},
	HookSocialProof: {
		"I've helped [number] people [result]. Here's how:",
		"[Impressive metric] in [timeframe]. Here's the breakdown:",
		"After [experience], I finally understand [topic]:",
		"My [thing] did [number]. The strategy was simple:",
		"[Number] [experts] told me the same thing:",
	},
}

// CTA categories for closing lines.
const (
	CTAFollow     = "follow"
	CTAEngagement = "engagement"
	CTAShare      = "share"
)

var callToActions = map[string][]string{
	CTAFollow: {
		"Follow for more [topic] insights.",
		"Follow me for daily [topic] content.",
		"If this helped, follow for more.",
		"Follow @[handle] for more threads like this.",
	},
	CTAEngagement: {
		"What would you add to this list?",
		"Agree or disagree? Let me know below.",
		"What's the hardest lesson you've learned about [topic]?",
		"Drop a [emoji] if this resonated.",
		"Reply with your [topic] and I'll share my thoughts.",
	},
	CTAShare: {
		"Repost to help others.",
		"Bookmark this for later. Repost to share.",
		"Save this thread. Share it with someone who needs it.",
		"Tag someone who needs to see this.",
	},
}

// TemplatesForNiche filters the catalog to templates suited to a niche.
// General-purpose templates are always included.
func TemplatesForNiche(niche string) []PostTemplate {
	var out []PostTemplate
	for _, t := range viralTemplates {
		for _, n := range t.BestFor {
			if n == niche || n == "general" {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
