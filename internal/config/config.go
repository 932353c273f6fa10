package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Profile  ProfileConfig  `yaml:"profile"`
	LLM      LLMConfig      `yaml:"llm"`
	Feeds    []FeedItem     `yaml:"feeds"`
	Filter   FilterConfig   `yaml:"filter"`
	Alerts   AlertsConfig   `yaml:"alerts"`
}

// DatabaseConfig configures SQLite storage.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// ScheduleConfig configures feed collection and topic retention.
type ScheduleConfig struct {
	CollectInterval string `yaml:"collect_interval"`
	TopicRetention  string `yaml:"topic_retention"`
}

// ParseCollectInterval returns the collect interval as time.Duration.
func (s ScheduleConfig) ParseCollectInterval() time.Duration {
	d, err := time.ParseDuration(s.CollectInterval)
	if err != nil {
		return 30 * time.Minute
	}
	return d
}

// ParseTopicRetention returns how long collected topics are kept.
func (s ScheduleConfig) ParseTopicRetention() time.Duration {
	d, err := time.ParseDuration(s.TopicRetention)
	if err != nil {
		return 48 * time.Hour
	}
	return d
}

// ProfileConfig describes the author the tool optimizes for.
type ProfileConfig struct {
	Niche     string `yaml:"niche"`
	Followers int    `yaml:"followers"`
	Premium   bool   `yaml:"premium"`
}

// LLMConfig configures the optional AI generation provider.
type LLMConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Provider string `yaml:"provider"` // "openai" or "anthropic"
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"` // custom endpoint (optional)
}

// FeedItem is a single RSS feed entry.
type FeedItem struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// FilterConfig configures topic relevance filtering.
type FilterConfig struct {
	Niches         []string `yaml:"niches"`
	ExtraKeywords  []string `yaml:"extra_keywords"`
	AlertRelevance int      `yaml:"alert_relevance"`
}

// AlertsConfig configures alert destinations.
type AlertsConfig struct {
	Slack   SlackConfig   `yaml:"slack"`
	Discord DiscordConfig `yaml:"discord"`
	Webhook WebhookConfig `yaml:"webhook"`
}

// SlackConfig for Slack webhook alerts.
type SlackConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// DiscordConfig for Discord webhook alerts.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// WebhookConfig for generic webhook alerts.
type WebhookConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Secret  string `yaml:"secret"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: "./postpulse.db"},
		Server:   ServerConfig{Port: 8080},
		Schedule: ScheduleConfig{
			CollectInterval: "30m",
			TopicRetention:  "48h",
		},
		Profile: ProfileConfig{
			Niche:     "general",
			Followers: 1000,
		},
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "gpt-4o-mini",
		},
		Feeds: []FeedItem{
			{Name: "TechCrunch", URL: "https://techcrunch.com/feed/"},
			{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml"},
			{Name: "Hacker News", URL: "https://hnrss.org/frontpage"},
		},
		Filter: FilterConfig{
			Niches:         []string{"tech", "ai"},
			AlertRelevance: 2,
		},
		Alerts: AlertsConfig{},
	}
}

// Load reads configuration from a YAML file and applies env var
// overrides. A local .env file is honored when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides overrides config values with environment variables.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("POSTPULSE_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("SLACK_WEBHOOK_URL"); v != "" {
		cfg.Alerts.Slack.WebhookURL = v
		cfg.Alerts.Slack.Enabled = true
	}
	if v := os.Getenv("DISCORD_WEBHOOK_URL"); v != "" {
		cfg.Alerts.Discord.WebhookURL = v
		cfg.Alerts.Discord.Enabled = true
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
		cfg.LLM.Enabled = true
		cfg.LLM.Provider = "openai"
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
		cfg.LLM.Enabled = true
		cfg.LLM.Provider = "anthropic"
	}
}
