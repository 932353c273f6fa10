package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// RSSFeed is a named RSS/Atom feed URL.
type RSSFeed struct {
	Name string
	URL  string
}

// RSS collects topic inspiration from RSS/Atom feeds.
type RSS struct {
	client *http.Client
	parser *gofeed.Parser
	feeds  []RSSFeed
	filter *Filter
}

// NewRSS creates a new RSS collector. A nil filter keeps every entry with
// zero relevance.
func NewRSS(feeds []RSSFeed, filter *Filter) *RSS {
	return &RSS{
		client: &http.Client{Timeout: 30 * time.Second},
		parser: gofeed.NewParser(),
		feeds:  feeds,
		filter: filter,
	}
}

func (r *RSS) Name() string { return "rss" }

// Collect fetches all configured feeds. Per-feed failures are skipped so
// one dead feed does not sink the run.
func (r *RSS) Collect(ctx context.Context) ([]TopicItem, error) {
	var all []TopicItem

	for _, feed := range r.feeds {
		items, err := r.collectFeed(ctx, feed)
		if err != nil {
			fmt.Printf("  rss feed %s error: %v\n", feed.Name, err)
			continue
		}
		all = append(all, items...)
	}

	return all, nil
}

func (r *RSS) collectFeed(ctx context.Context, feed RSSFeed) ([]TopicItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feed.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create rss request %s: %w", feed.Name, err)
	}
	req.Header.Set("User-Agent", "postpulse/1.0")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rss %s: %w", feed.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rss %s status %d", feed.Name, resp.StatusCode)
	}

	parsed, err := r.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse rss %s: %w", feed.Name, err)
	}

	var items []TopicItem
	cutoff := time.Now().Add(-24 * time.Hour) // only fresh topics are worth posting about

	for _, entry := range parsed.Items {
		published := time.Now().UTC()
		if entry.PublishedParsed != nil {
			published = entry.PublishedParsed.UTC()
		} else if entry.UpdatedParsed != nil {
			published = entry.UpdatedParsed.UTC()
		}

		if published.Before(cutoff) {
			continue
		}

		relevance := 0
		if r.filter != nil {
			relevance = r.filter.Relevance(entry.Title + " " + entry.Description)
			if relevance == 0 {
				continue
			}
		}

		link := entry.Link
		if link == "" && len(entry.Links) > 0 {
			link = entry.Links[0]
		}

		items = append(items, TopicItem{
			ID:          fmt.Sprintf("rss:%s:%s", feed.Name, entry.GUID),
			Feed:        feed.Name,
			ExternalID:  entry.GUID,
			Title:       entry.Title,
			URL:         link,
			Description: truncate(entry.Description, 500),
			Relevance:   relevance,
			PublishedAt: published,
			CollectedAt: time.Now().UTC(),
		})
	}

	return items, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
