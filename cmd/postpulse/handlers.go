package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/elonfeng/postpulse/internal/config"
	"github.com/elonfeng/postpulse/internal/scheduler"
	"github.com/elonfeng/postpulse/internal/store"
	"github.com/elonfeng/postpulse/pkg/alert"
	"github.com/elonfeng/postpulse/pkg/algorithm"
	"github.com/elonfeng/postpulse/pkg/generator"
	"github.com/elonfeng/postpulse/pkg/server"
	"github.com/elonfeng/postpulse/pkg/source"
)

type generateOpts struct {
	Topic  string
	Niche  string
	Style  string
	Tone   string
	Preset string
	Hook   bool
	CTA    bool
	AI     bool
}

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func buildLLM(cfg *config.Config) *generator.LLMClient {
	if !cfg.LLM.Enabled || cfg.LLM.APIKey == "" {
		return nil
	}
	fmt.Fprintf(os.Stderr, "ai provider: %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
	return generator.NewLLMClient(cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

func buildSources(cfg *config.Config) []source.Source {
	filter := source.NewFilter(cfg.Filter.Niches, cfg.Filter.ExtraKeywords)

	feeds := make([]source.RSSFeed, len(cfg.Feeds))
	for i, f := range cfg.Feeds {
		feeds[i] = source.RSSFeed{Name: f.Name, URL: f.URL}
	}

	return []source.Source{source.NewRSS(feeds, filter)}
}

func buildAlertManager(cfg *config.Config) *alert.Manager {
	var notifiers []alert.Notifier

	if cfg.Alerts.Slack.Enabled && cfg.Alerts.Slack.WebhookURL != "" {
		notifiers = append(notifiers, alert.NewSlack(cfg.Alerts.Slack.WebhookURL))
	}
	if cfg.Alerts.Discord.Enabled && cfg.Alerts.Discord.WebhookURL != "" {
		notifiers = append(notifiers, alert.NewDiscord(cfg.Alerts.Discord.WebhookURL))
	}
	if cfg.Alerts.Webhook.Enabled && cfg.Alerts.Webhook.URL != "" {
		notifiers = append(notifiers, alert.NewWebhook(cfg.Alerts.Webhook.URL, cfg.Alerts.Webhook.Secret))
	}

	return alert.NewManager(notifiers)
}

func runAnalyze(text, niche string, followers int, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if niche == "" {
		niche = cfg.Profile.Niche
	}
	if followers == 0 {
		followers = cfg.Profile.Followers
	}

	analyzer := algorithm.NewAnalyzer(algorithm.Tables{})
	analysis := analyzer.Analyze(text, niche)
	if followers > 0 {
		analysis.MonetizationImpact = algorithm.ProjectMonetization(analysis.Signals, followers)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	fmt.Printf("Viral score: %.1f (%s)\n", analysis.ViralScore, analysis.Tier)
	fmt.Printf("Follower growth potential: +%d\n", analysis.MonetizationImpact.FollowerGrowthPotential)
	fmt.Printf("Engagement boost: %d%%\n", analysis.MonetizationImpact.EngagementBoost)

	if len(analysis.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, s := range analysis.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}

	advice := generator.BestPostingTime(time.Now())
	fmt.Printf("\nTiming: %s\n", advice.Reason)
	return nil
}

func runGenerate(opts generateOpts, jsonOutput, save bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if opts.Niche == "" {
		opts.Niche = cfg.Profile.Niche
	}

	genCfg := generator.Config{
		Niche:       opts.Niche,
		Topic:       opts.Topic,
		Style:       opts.Style,
		Tone:        opts.Tone,
		IncludeHook: opts.Hook,
		IncludeCTA:  opts.CTA,
	}
	if opts.Preset != "" {
		preset, ok := generator.Presets()[opts.Preset]
		if !ok {
			var names []string
			for name := range generator.Presets() {
				names = append(names, name)
			}
			return fmt.Errorf("unknown preset %q (available: %s)", opts.Preset, strings.Join(names, ", "))
		}
		preset.Topic = opts.Topic
		preset.Niche = opts.Niche
		genCfg = preset
	}

	analyzer := algorithm.NewAnalyzer(algorithm.Tables{})
	gen := generator.New(analyzer, nil)

	var post generator.GeneratedPost
	origin := "template"

	if opts.AI {
		llm := buildLLM(cfg)
		if llm == nil {
			return fmt.Errorf("ai generation requires an API key (set OPENAI_API_KEY or ANTHROPIC_API_KEY)")
		}
		content, err := llm.Generate(context.Background(), generator.BuildPrompt(genCfg, nil))
		if err != nil {
			return fmt.Errorf("ai generation: %w", err)
		}
		post = generator.GeneratedPost{
			Content:    content,
			Analysis:   gen.Analyze(content, genCfg.Niche),
			Variations: gen.Variations(content, 3),
		}
		origin = "ai"
	} else {
		post = gen.Generate(genCfg)
	}

	if save {
		db, err := store.New(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer db.Close()

		record := &store.Post{
			Content:     post.Content,
			Niche:       genCfg.Niche,
			Origin:      origin,
			ViralScore:  post.Analysis.ViralScore,
			Tier:        string(post.Analysis.Tier),
			Suggestions: post.Analysis.Suggestions,
		}
		if err := db.SavePost(context.Background(), record); err != nil {
			return fmt.Errorf("save draft: %w", err)
		}
		fmt.Fprintf(os.Stderr, "saved draft %s\n", record.ID)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(post)
	}

	fmt.Println(post.Content)
	fmt.Printf("\n--- score %.1f (%s)", post.Analysis.ViralScore, post.Analysis.Tier)
	if post.Template != nil {
		fmt.Printf(", template %q", post.Template.Name)
	}
	fmt.Println(" ---")

	for i, v := range post.Variations {
		fmt.Printf("\nVariation %d:\n%s\n", i+1, v)
	}
	return nil
}

func runTemplates(niche string, jsonOutput bool) error {
	templates := generator.Templates()
	if niche != "" {
		templates = generator.TemplatesForNiche(niche)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(templates)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tFACTORS\tBEST FOR")
	for _, t := range templates {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			t.ID, t.Name,
			strings.Join(t.ViralFactors, ","),
			strings.Join(t.BestFor, ","))
	}
	return w.Flush()
}

func runTopics(limit int, feed string, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	topics, err := db.ListTopics(context.Background(), store.TopicListOpts{
		Feed:  feed,
		Limit: limit,
	})
	if err != nil {
		return fmt.Errorf("list topics: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(topics)
	}

	if len(topics) == 0 {
		fmt.Println("no topics found (try collecting first: postpulse collect)")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RELEVANCE\tFEED\tTITLE\tPUBLISHED")
	for _, t := range topics {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			t.Relevance, t.Feed, t.Title,
			t.PublishedAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func runCollect() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	total := 0

	for _, src := range buildSources(cfg) {
		fmt.Fprintf(os.Stderr, "collecting from %s...\n", src.Name())
		topics, err := src.Collect(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  error: %v\n", err)
			continue
		}

		if err := db.UpsertTopics(ctx, topics); err != nil {
			fmt.Fprintf(os.Stderr, "  store error: %v\n", err)
			continue
		}

		fmt.Fprintf(os.Stderr, "  collected %d topics\n", len(topics))
		total += len(topics)
	}

	fmt.Fprintf(os.Stderr, "\ntotal: %d topics\n", total)
	return nil
}

func runServe(port int) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if port == 0 {
		port = cfg.Server.Port
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	srv := server.New(server.Deps{
		Store:     db,
		LLM:       buildLLM(cfg),
		Sources:   buildSources(cfg),
		Followers: cfg.Profile.Followers,
		Premium:   cfg.Profile.Premium,
		Log:       log,
		Port:      port,
	})
	return srv.ListenAndServe()
}

func runDaemon(port int) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if port == 0 {
		port = cfg.Server.Port
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	sources := buildSources(cfg)
	alertMgr := buildAlertManager(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sched := scheduler.New(db, sources, alertMgr, log,
		cfg.Schedule.ParseCollectInterval(),
		cfg.Schedule.ParseTopicRetention(),
		cfg.Filter.AlertRelevance,
	)

	// Scheduler runs in the background; the server owns the foreground.
	go func() {
		if err := sched.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error("scheduler stopped", zap.Error(err))
		}
	}()

	srv := server.New(server.Deps{
		Store:     db,
		LLM:       buildLLM(cfg),
		Sources:   sources,
		Followers: cfg.Profile.Followers,
		Premium:   cfg.Profile.Premium,
		Log:       log,
		Port:      port,
	})
	go func() {
		<-ctx.Done()
		log.Info("shutting down")
	}()

	return srv.ListenAndServe()
}
