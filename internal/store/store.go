package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/elonfeng/postpulse/pkg/source"
)

// Post is a stored draft with its analysis snapshot and any engagement
// metrics recorded after publishing.
type Post struct {
	ID              string    `db:"id" json:"id"`
	Content         string    `db:"content" json:"content"`
	Niche           string    `db:"niche" json:"niche"`
	Origin          string    `db:"origin" json:"origin"` // "manual", "template", or "ai"
	ViralScore      float64   `db:"viral_score" json:"viral_score"`
	Tier            string    `db:"tier" json:"tier"`
	SuggestionsJSON string    `db:"suggestions" json:"-"`
	Suggestions     []string  `db:"-" json:"suggestions"`
	Posted          bool      `db:"posted" json:"posted"`
	Likes           int       `db:"likes" json:"likes"`
	Replies         int       `db:"replies" json:"replies"`
	Reposts         int       `db:"reposts" json:"reposts"`
	Views           int       `db:"views" json:"views"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// PostMetrics are the engagement numbers recorded against a published
// post.
type PostMetrics struct {
	Likes   int `json:"likes"`
	Replies int `json:"replies"`
	Reposts int `json:"reposts"`
	Views   int `json:"views"`
}

// PostListOpts controls post history listing.
type PostListOpts struct {
	Niche    string
	MinScore float64
	Limit    int
}

// TopicListOpts controls topic listing.
type TopicListOpts struct {
	Feed         string
	MinRelevance int
	Unalerted    bool
	Limit        int
}

// Store is the persistence interface.
type Store interface {
	SavePost(ctx context.Context, p *Post) error
	GetPost(ctx context.Context, id string) (*Post, error)
	ListPosts(ctx context.Context, opts PostListOpts) ([]Post, error)
	UpdatePostMetrics(ctx context.Context, id string, m PostMetrics) error

	UpsertTopic(ctx context.Context, t *source.TopicItem) error
	UpsertTopics(ctx context.Context, topics []source.TopicItem) error
	ListTopics(ctx context.Context, opts TopicListOpts) ([]source.TopicItem, error)
	MarkTopicAlerted(ctx context.Context, id string) error
	PruneTopics(ctx context.Context, before time.Time) (int64, error)

	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// New opens a SQLite database and runs migrations.
func New(path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SavePost inserts a draft, assigning an id and creation time when unset.
func (s *SQLiteStore) SavePost(ctx context.Context, p *Post) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	suggestionsJSON, _ := json.Marshal(p.Suggestions)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (id, content, niche, origin, viral_score, tier, suggestions, posted, likes, replies, reposts, views, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Content, p.Niche, p.Origin, p.ViralScore, p.Tier,
		string(suggestionsJSON), p.Posted, p.Likes, p.Replies, p.Reposts, p.Views, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("save post %s: %w", p.ID, err)
	}
	return nil
}

func (s *SQLiteStore) GetPost(ctx context.Context, id string) (*Post, error) {
	var p Post
	if err := s.db.GetContext(ctx, &p, "SELECT * FROM posts WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}
	json.Unmarshal([]byte(p.SuggestionsJSON), &p.Suggestions)
	return &p, nil
}

func (s *SQLiteStore) ListPosts(ctx context.Context, opts PostListOpts) ([]Post, error) {
	query := "SELECT * FROM posts WHERE 1=1"
	var args []any

	if opts.Niche != "" {
		query += " AND niche = ?"
		args = append(args, opts.Niche)
	}
	if opts.MinScore > 0 {
		query += " AND viral_score >= ?"
		args = append(args, opts.MinScore)
	}

	query += " ORDER BY created_at DESC"

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " LIMIT ?"
	args = append(args, limit)

	var posts []Post
	if err := s.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	for i := range posts {
		json.Unmarshal([]byte(posts[i].SuggestionsJSON), &posts[i].Suggestions)
	}
	return posts, nil
}

// UpdatePostMetrics records engagement numbers and flags the post as
// published.
func (s *SQLiteStore) UpdatePostMetrics(ctx context.Context, id string, m PostMetrics) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE posts SET posted = 1, likes = ?, replies = ?, reposts = ?, views = ?
		WHERE id = ?
	`, m.Likes, m.Replies, m.Reposts, m.Views, id)
	if err != nil {
		return fmt.Errorf("update post metrics %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update post metrics %s: %w", id, sql.ErrNoRows)
	}
	return nil
}

func (s *SQLiteStore) UpsertTopic(ctx context.Context, t *source.TopicItem) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO topics (id, feed, external_id, title, url, description, relevance, published_at, collected_at, alerted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			relevance = excluded.relevance,
			collected_at = excluded.collected_at
	`, t.ID, t.Feed, t.ExternalID, t.Title, t.URL, t.Description,
		t.Relevance, t.PublishedAt, t.CollectedAt, t.Alerted)
	if err != nil {
		return fmt.Errorf("upsert topic %s: %w", t.ID, err)
	}
	return nil
}

func (s *SQLiteStore) UpsertTopics(ctx context.Context, topics []source.TopicItem) error {
	for i := range topics {
		if err := s.UpsertTopic(ctx, &topics[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) ListTopics(ctx context.Context, opts TopicListOpts) ([]source.TopicItem, error) {
	query := "SELECT * FROM topics WHERE 1=1"
	var args []any

	if opts.Feed != "" {
		query += " AND feed = ?"
		args = append(args, opts.Feed)
	}
	if opts.MinRelevance > 0 {
		query += " AND relevance >= ?"
		args = append(args, opts.MinRelevance)
	}
	if opts.Unalerted {
		query += " AND alerted = 0"
	}

	query += " ORDER BY relevance DESC, published_at DESC"

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " LIMIT ?"
	args = append(args, limit)

	var topics []source.TopicItem
	if err := s.db.SelectContext(ctx, &topics, query, args...); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

func (s *SQLiteStore) MarkTopicAlerted(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "UPDATE topics SET alerted = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("mark topic alerted %s: %w", id, err)
	}
	return nil
}

// PruneTopics deletes topics collected before the cutoff and reports how
// many were removed.
func (s *SQLiteStore) PruneTopics(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM topics WHERE collected_at < ?", before)
	if err != nil {
		return 0, fmt.Errorf("prune topics: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}
