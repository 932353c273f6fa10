// Package source collects topic inspiration for post generation from
// external feeds.
package source

import (
	"context"
	"time"
)

// TopicItem is a piece of topic inspiration pulled from a feed.
type TopicItem struct {
	ID          string    `json:"id" db:"id"`
	Feed        string    `json:"feed" db:"feed"`
	ExternalID  string    `json:"external_id" db:"external_id"`
	Title       string    `json:"title" db:"title"`
	URL         string    `json:"url" db:"url"`
	Description string    `json:"description" db:"description"`
	Relevance   int       `json:"relevance" db:"relevance"`
	PublishedAt time.Time `json:"published_at" db:"published_at"`
	CollectedAt time.Time `json:"collected_at" db:"collected_at"`
	Alerted     bool      `json:"alerted" db:"alerted"`
}

// Source is the interface every topic collector must implement.
type Source interface {
	Name() string
	Collect(ctx context.Context) ([]TopicItem, error)
}
