package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elonfeng/postpulse/internal/store"
	"github.com/elonfeng/postpulse/pkg/algorithm"
	"github.com/elonfeng/postpulse/pkg/source"
)

type stubSource struct {
	name   string
	topics []source.TopicItem
	err    error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Collect(ctx context.Context) ([]source.TopicItem, error) {
	return s.topics, s.err
}

func newTestServer(t *testing.T, sources ...source.Source) (*Server, store.Store) {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	srv := New(Deps{
		Store:     st,
		Sources:   sources,
		Followers: 500,
	})
	return srv, st
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestAnalyze(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/analyze", map[string]any{
		"text":  "Here's how I grew my newsletter. What would you try first?",
		"niche": "tech",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis algorithm.PostAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))

	assert.Greater(t, analysis.ViralScore, 0.0)
	assert.NotEmpty(t, analysis.Tier)
	assert.Greater(t, analysis.Signals.Reply, 0.0)
}

func TestAnalyzeFollowersOverride(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/analyze", map[string]any{
		"text":      "Repost this if you agree. Follow for more takes on shipping fast.",
		"followers": 20000,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis algorithm.PostAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))

	assert.Greater(t, analysis.MonetizationImpact.FollowerGrowthPotential, 0)
}

func TestAnalyzeRejectsBadRequests(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/analyze", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString("{not json"))
	rec2 := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
}

func TestGenerateTemplatePath(t *testing.T) {
	srv, st := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/generate", map[string]any{
		"topic":        "code review",
		"niche":        "tech",
		"include_hook": true,
		"include_cta":  true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Content    string   `json:"content"`
		Variations []string `json:"variations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Content, "code review")
	assert.NotEmpty(t, resp.Variations)

	// The draft is recorded in history.
	posts, err := st.ListPosts(context.Background(), store.PostListOpts{})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "template", posts[0].Origin)
	assert.Equal(t, "tech", posts[0].Niche)
}

func TestGeneratePreset(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/generate", map[string]any{
		"topic":  "remote work",
		"preset": "hot-take",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/generate", map[string]any{
		"topic":  "remote work",
		"preset": "no-such-preset",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateRequiresTopic(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/generate", map[string]any{
		"niche": "tech",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateAIWithoutProvider(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/generate", map[string]any{
		"topic": "ai agents",
		"ai":    true,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}

func TestTemplates(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Greater(t, resp.Count, 5)

	rec = doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/templates?niche=fitness", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var filtered struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filtered))
	assert.Greater(t, filtered.Count, 0)
	assert.LessOrEqual(t, filtered.Count, resp.Count)
}

func TestNiches(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/niches", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tech")
	assert.Contains(t, rec.Body.String(), "general")
}

func TestPostingTime(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/posting-time", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "advice")
	assert.Contains(t, rec.Body.String(), "schedule")
}

func TestMonetization(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/monetization?followers=600", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []algorithm.ProgramProgress `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data)

	for _, p := range resp.Data {
		assert.GreaterOrEqual(t, p.FollowerProgress, 0.0)
		assert.LessOrEqual(t, p.FollowerProgress, 100.0)
		if p.Program.ID == "tips" {
			assert.True(t, p.Eligible)
		}
	}
}

func TestCollectAndTopics(t *testing.T) {
	now := time.Now().UTC()
	src := &stubSource{
		name: "test-feed",
		topics: []source.TopicItem{
			{
				ID:          "test-feed:1",
				Feed:        "test-feed",
				ExternalID:  "1",
				Title:       "New AI model released",
				URL:         "https://example.com/1",
				Relevance:   3,
				PublishedAt: now,
				CollectedAt: now,
			},
		},
	}
	broken := &stubSource{name: "broken", err: errors.New("feed unreachable")}

	srv, _ := newTestServer(t, src, broken)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/collect", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Collected map[string]int `json:"collected"`
		Errors    []string       `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Collected["test-feed"])
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "broken")

	rec = doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/topics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "New AI model released")
}

func TestHistoryFilters(t *testing.T) {
	srv, st := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, st.SavePost(ctx, &store.Post{Content: "a", Niche: "tech", Origin: "manual", ViralScore: 40}))
	require.NoError(t, st.SavePost(ctx, &store.Post{Content: "b", Niche: "fitness", Origin: "manual", ViralScore: 60}))

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/history?niche=tech", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count int          `json:"count"`
		Data  []store.Post `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "tech", resp.Data[0].Niche)
}
