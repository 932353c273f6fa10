package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/elonfeng/postpulse/internal/store"
	"github.com/elonfeng/postpulse/pkg/alert"
	"github.com/elonfeng/postpulse/pkg/source"
)

// Scheduler runs periodic topic collection, pruning, and hot-topic
// alerting.
type Scheduler struct {
	store          store.Store
	sources        []source.Source
	alertMgr       *alert.Manager
	log            *zap.Logger
	collectInt     time.Duration
	topicRetention time.Duration
	alertRelevance int
}

// New creates a new scheduler.
func New(
	s store.Store,
	sources []source.Source,
	alertMgr *alert.Manager,
	log *zap.Logger,
	collectInt, topicRetention time.Duration,
	alertRelevance int,
) *Scheduler {
	if collectInt == 0 {
		collectInt = 30 * time.Minute
	}
	if topicRetention == 0 {
		topicRetention = 48 * time.Hour
	}
	if alertRelevance == 0 {
		alertRelevance = 2
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		store:          s,
		sources:        sources,
		alertMgr:       alertMgr,
		log:            log,
		collectInt:     collectInt,
		topicRetention: topicRetention,
		alertRelevance: alertRelevance,
	}
}

// Run starts the scheduler loop. Blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.collectInt)
	defer ticker.Stop()

	// Run immediately on start.
	s.log.Info("scheduler: initial collection")
	s.collectAll(ctx)
	s.alertHotTopics(ctx)

	s.log.Info("scheduler: running", zap.Duration("collect_interval", s.collectInt))

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler: stopped")
			return ctx.Err()
		case <-ticker.C:
			s.collectAll(ctx)
			s.alertHotTopics(ctx)
			s.prune(ctx)
		}
	}
}

func (s *Scheduler) collectAll(ctx context.Context) {
	total := 0
	for _, src := range s.sources {
		topics, err := src.Collect(ctx)
		if err != nil {
			s.log.Warn("collect failed", zap.String("source", src.Name()), zap.Error(err))
			continue
		}

		if err := s.store.UpsertTopics(ctx, topics); err != nil {
			s.log.Warn("store topics failed", zap.String("source", src.Name()), zap.Error(err))
			continue
		}

		s.log.Info("collected", zap.String("source", src.Name()), zap.Int("topics", len(topics)))
		total += len(topics)
	}
	s.log.Info("collection done", zap.Int("total", total))
}

func (s *Scheduler) alertHotTopics(ctx context.Context) {
	if s.alertMgr == nil || !s.alertMgr.HasNotifiers() {
		return
	}

	topics, err := s.store.ListTopics(ctx, store.TopicListOpts{
		MinRelevance: s.alertRelevance,
		Unalerted:    true,
		Limit:        10,
	})
	if err != nil {
		s.log.Warn("list hot topics failed", zap.Error(err))
		return
	}

	for _, topic := range topics {
		notification := &alert.Notification{
			Title:     topic.Title,
			Body:      fmt.Sprintf("Hot topic in your niche (relevance %d) - a good moment to post about it.", topic.Relevance),
			URL:       topic.URL,
			Relevance: topic.Relevance,
			Topics:    []source.TopicItem{topic},
		}

		if err := s.alertMgr.Broadcast(ctx, notification); err != nil {
			s.log.Warn("alert failed", zap.String("topic", topic.Title), zap.Error(err))
			continue
		}

		_ = s.store.MarkTopicAlerted(ctx, topic.ID)
		s.log.Info("alerted", zap.String("topic", topic.Title), zap.Int("relevance", topic.Relevance))
	}
}

func (s *Scheduler) prune(ctx context.Context) {
	cutoff := time.Now().Add(-s.topicRetention)
	n, err := s.store.PruneTopics(ctx, cutoff)
	if err != nil {
		s.log.Warn("prune failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.log.Info("pruned stale topics", zap.Int64("removed", n))
	}
}
