package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "postpulse",
		Short: "Score, generate, and time social posts for maximum reach",
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")

	root.AddCommand(analyzeCmd())
	root.AddCommand(generateCmd())
	root.AddCommand(templatesCmd())
	root.AddCommand(topicsCmd())
	root.AddCommand(collectCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(runCmd())

	return root
}

func analyzeCmd() *cobra.Command {
	var (
		niche      string
		followers  int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Score a post draft and show improvement suggestions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0], niche, followers, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&niche, "niche", "", "content niche (default: from config)")
	cmd.Flags().IntVar(&followers, "followers", 0, "follower count for projections (default: from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func generateCmd() *cobra.Command {
	var (
		opts       generateOpts
		jsonOutput bool
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a post draft from the template catalog or an AI provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, jsonOutput, save)
		},
	}

	cmd.Flags().StringVar(&opts.Topic, "topic", "", "what the post is about (required)")
	cmd.Flags().StringVar(&opts.Niche, "niche", "", "content niche (default: from config)")
	cmd.Flags().StringVar(&opts.Style, "style", "mixed", "style: educational, story, controversial, value, mixed")
	cmd.Flags().StringVar(&opts.Tone, "tone", "casual", "tone: professional, casual, bold, inspirational")
	cmd.Flags().StringVar(&opts.Preset, "preset", "", "quick preset (e.g., hot-take, value-bomb)")
	cmd.Flags().BoolVar(&opts.Hook, "hook", true, "prepend an attention hook")
	cmd.Flags().BoolVar(&opts.CTA, "cta", true, "append a call to action")
	cmd.Flags().BoolVar(&opts.AI, "ai", false, "generate with the configured AI provider")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "save the draft to history")
	cmd.MarkFlagRequired("topic")
	return cmd
}

func templatesCmd() *cobra.Command {
	var (
		niche      string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the viral template catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(niche, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&niche, "niche", "", "only templates suited to this niche")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func topicsCmd() *cobra.Command {
	var (
		limit      int
		feed       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Show collected topic inspiration, hottest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTopics(limit, feed, jsonOutput)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "max topics to show")
	cmd.Flags().StringVar(&feed, "feed", "", "only topics from this feed")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func collectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collect",
		Short: "Fetch configured feeds and store fresh topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollect()
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "server port (default: from config)")
	return cmd
}

func runCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start daemon with feed scheduler and HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "server port (default: from config)")
	return cmd
}
