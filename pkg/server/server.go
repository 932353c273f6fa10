package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/elonfeng/postpulse/internal/store"
	"github.com/elonfeng/postpulse/pkg/algorithm"
	"github.com/elonfeng/postpulse/pkg/generator"
	"github.com/elonfeng/postpulse/pkg/source"
)

// Deps are the collaborators the HTTP API serves.
type Deps struct {
	Store     store.Store
	Analyzer  *algorithm.Analyzer
	Generator *generator.Generator
	LLM       *generator.LLMClient // nil disables AI generation
	Sources   []source.Source
	Followers int
	Premium   bool
	Log       *zap.Logger
	Port      int
}

// Server provides the HTTP API.
type Server struct {
	store     store.Store
	analyzer  *algorithm.Analyzer
	gen       *generator.Generator
	llm       *generator.LLMClient
	sources   []source.Source
	followers int
	premium   bool
	log       *zap.Logger
	port      int
}

// New creates a new HTTP server.
func New(d Deps) *Server {
	if d.Port == 0 {
		d.Port = 8080
	}
	if d.Analyzer == nil {
		d.Analyzer = algorithm.NewAnalyzer(algorithm.Tables{})
	}
	if d.Generator == nil {
		d.Generator = generator.New(d.Analyzer, nil)
	}
	if d.Followers <= 0 {
		d.Followers = algorithm.DefaultFollowers
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	return &Server{
		store:     d.Store,
		analyzer:  d.Analyzer,
		gen:       d.Generator,
		llm:       d.LLM,
		sources:   d.Sources,
		followers: d.Followers,
		premium:   d.Premium,
		log:       d.Log,
		port:      d.Port,
	}
}

// Handler returns the route mux. Split out so tests can drive it through
// httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/v1/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/v1/generate", s.handleGenerate)
	mux.HandleFunc("/api/v1/templates", s.handleTemplates)
	mux.HandleFunc("/api/v1/niches", s.handleNiches)
	mux.HandleFunc("/api/v1/topics", s.handleTopics)
	mux.HandleFunc("/api/v1/history", s.handleHistory)
	mux.HandleFunc("/api/v1/posting-time", s.handlePostingTime)
	mux.HandleFunc("/api/v1/monetization", s.handleMonetization)
	mux.HandleFunc("/api/v1/collect", s.handleCollect)
	return mux
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("server listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Text      string `json:"text"`
		Niche     string `json:"niche"`
		Followers int    `json:"followers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	analysis := s.analyzer.Analyze(req.Text, req.Niche)
	if req.Followers > 0 {
		analysis.MonetizationImpact = algorithm.ProjectMonetization(analysis.Signals, req.Followers)
	}

	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		generator.Config
		Preset string `json:"preset"`
		AI     bool   `json:"ai"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	cfg := req.Config
	if req.Preset != "" {
		preset, ok := generator.Presets()[req.Preset]
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown preset: " + req.Preset})
			return
		}
		preset.Topic = cfg.Topic
		preset.Niche = cfg.Niche
		cfg = preset
	}
	if cfg.Topic == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "topic is required"})
		return
	}

	var post generator.GeneratedPost
	origin := "template"

	if req.AI {
		if s.llm == nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "AI generation is not configured"})
			return
		}
		content, err := s.llm.Generate(r.Context(), generator.BuildPrompt(cfg, nil))
		if err != nil {
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "generation failed: " + err.Error()})
			return
		}
		post = generator.GeneratedPost{
			Content:    content,
			Analysis:   s.gen.Analyze(content, cfg.Niche),
			Variations: s.gen.Variations(content, 3),
		}
		origin = "ai"
	} else {
		post = s.gen.Generate(cfg)
	}

	if s.store != nil {
		record := &store.Post{
			Content:     post.Content,
			Niche:       cfg.Niche,
			Origin:      origin,
			ViralScore:  post.Analysis.ViralScore,
			Tier:        string(post.Analysis.Tier),
			Suggestions: post.Analysis.Suggestions,
		}
		if err := s.store.SavePost(r.Context(), record); err != nil {
			s.log.Warn("save generated post failed", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	templates := generator.Templates()
	if niche := r.URL.Query().Get("niche"); niche != "" {
		templates = generator.TemplatesForNiche(niche)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  templates,
		"count": len(templates),
	})
}

func (s *Server) handleNiches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	niches := algorithm.Niches()
	writeJSON(w, http.StatusOK, map[string]any{
		"data":  niches,
		"count": len(niches),
	})
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	opts := store.TopicListOpts{Limit: 50}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Limit = n
		}
	}
	if v := r.URL.Query().Get("feed"); v != "" {
		opts.Feed = v
	}

	topics, err := s.store.ListTopics(r.Context(), opts)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  topics,
		"count": len(topics),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	opts := store.PostListOpts{Limit: 50}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Limit = n
		}
	}
	if v := r.URL.Query().Get("niche"); v != "" {
		opts.Niche = v
	}

	posts, err := s.store.ListPosts(r.Context(), opts)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  posts,
		"count": len(posts),
	})
}

func (s *Server) handlePostingTime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"advice":   generator.BestPostingTime(time.Now()),
		"schedule": generator.OptimalPostingTimes(),
	})
}

func (s *Server) handleMonetization(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	profile := algorithm.Profile{Followers: s.followers, Premium: s.premium}
	if v := r.URL.Query().Get("followers"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			profile.Followers = n
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data": algorithm.MonetizationProgress(profile),
	})
}

func (s *Server) handleCollect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	ctx := r.Context()
	results := make(map[string]int)
	var errs []string

	for _, src := range s.sources {
		topics, err := src.Collect(ctx)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", src.Name(), err))
			continue
		}
		if err := s.store.UpsertTopics(ctx, topics); err != nil {
			errs = append(errs, fmt.Sprintf("%s store: %v", src.Name(), err))
			continue
		}
		results[src.Name()] = len(topics)
	}

	resp := map[string]any{"collected": results}
	if len(errs) > 0 {
		resp["errors"] = errs
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
