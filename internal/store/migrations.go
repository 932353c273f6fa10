package store

const schema = `
CREATE TABLE IF NOT EXISTS posts (
    id          TEXT PRIMARY KEY,
    content     TEXT NOT NULL,
    niche       TEXT NOT NULL DEFAULT 'general',
    origin      TEXT NOT NULL DEFAULT 'manual',
    viral_score REAL NOT NULL DEFAULT 0,
    tier        TEXT NOT NULL DEFAULT 'low',
    suggestions TEXT NOT NULL DEFAULT '[]',
    posted      BOOLEAN NOT NULL DEFAULT 0,
    likes       INTEGER NOT NULL DEFAULT 0,
    replies     INTEGER NOT NULL DEFAULT 0,
    reposts     INTEGER NOT NULL DEFAULT 0,
    views       INTEGER NOT NULL DEFAULT 0,
    created_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_posts_niche ON posts(niche);
CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at);
CREATE INDEX IF NOT EXISTS idx_posts_score ON posts(viral_score);

CREATE TABLE IF NOT EXISTS topics (
    id           TEXT PRIMARY KEY,
    feed         TEXT NOT NULL,
    external_id  TEXT NOT NULL,
    title        TEXT NOT NULL,
    url          TEXT NOT NULL DEFAULT '',
    description  TEXT NOT NULL DEFAULT '',
    relevance    INTEGER NOT NULL DEFAULT 0,
    published_at DATETIME NOT NULL,
    collected_at DATETIME NOT NULL,
    alerted      BOOLEAN NOT NULL DEFAULT 0,
    UNIQUE(feed, external_id)
);

CREATE INDEX IF NOT EXISTS idx_topics_feed ON topics(feed);
CREATE INDEX IF NOT EXISTS idx_topics_collected_at ON topics(collected_at);
CREATE INDEX IF NOT EXISTS idx_topics_relevance ON topics(relevance);
`
