package scheduler

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elonfeng/postpulse/internal/store"
	"github.com/elonfeng/postpulse/pkg/alert"
	"github.com/elonfeng/postpulse/pkg/source"
)

type stubSource struct {
	topics []source.TopicItem
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Collect(ctx context.Context) ([]source.TopicItem, error) {
	return s.topics, nil
}

type recordingNotifier struct {
	sent []*alert.Notification
}

func (n *recordingNotifier) Name() string { return "recording" }

func (n *recordingNotifier) Send(ctx context.Context, notification *alert.Notification) error {
	n.sent = append(n.sent, notification)
	return nil
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func topic(id string, relevance int) source.TopicItem {
	now := time.Now().UTC()
	return source.TopicItem{
		ID:          id,
		Feed:        "stub",
		ExternalID:  id,
		Title:       "topic " + id,
		Relevance:   relevance,
		PublishedAt: now,
		CollectedAt: now,
	}
}

func TestCollectAllStoresTopics(t *testing.T) {
	st := newTestStore(t)
	src := &stubSource{topics: []source.TopicItem{topic("a", 1), topic("b", 3)}}

	sched := New(st, []source.Source{src}, nil, nil, 0, 0, 0)
	sched.collectAll(context.Background())

	topics, err := st.ListTopics(context.Background(), store.TopicListOpts{})
	require.NoError(t, err)
	assert.Len(t, topics, 2)
}

func TestAlertHotTopics(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	hot := topic("hot", 3)
	cold := topic("cold", 1)
	require.NoError(t, st.UpsertTopics(ctx, []source.TopicItem{hot, cold}))

	notifier := &recordingNotifier{}
	mgr := alert.NewManager([]alert.Notifier{notifier})

	sched := New(st, nil, mgr, nil, 0, 0, 2)
	sched.alertHotTopics(ctx)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, hot.Title, notifier.sent[0].Title)

	// An already-alerted topic is not re-sent.
	sched.alertHotTopics(ctx)
	assert.Len(t, notifier.sent, 1)
}

func TestRunStopsOnCancel(t *testing.T) {
	st := newTestStore(t)
	sched := New(st, nil, nil, nil, time.Hour, 0, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sched.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
