package alert

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingNotifier struct{}

func (failingNotifier) Name() string { return "failing" }

func (failingNotifier) Send(ctx context.Context, n *Notification) error {
	return errors.New("boom")
}

func TestManagerHasNotifiers(t *testing.T) {
	assert.False(t, NewManager(nil).HasNotifiers())
	assert.True(t, NewManager([]Notifier{failingNotifier{}}).HasNotifiers())
}

func TestBroadcastCollectsErrors(t *testing.T) {
	mgr := NewManager([]Notifier{failingNotifier{}})

	err := mgr.Broadcast(context.Background(), &Notification{Title: "t"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing")
}

func TestWebhookSignsPayload(t *testing.T) {
	secret := "hunter2"
	var gotSig string
	var gotBody []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSig = r.Header.Get("X-Signature-256")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	wh := NewWebhook(ts.URL, secret)
	err := wh.Send(context.Background(), &Notification{Title: "hot topic", Relevance: 3})
	require.NoError(t, err)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(gotBody)
	want := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	assert.Equal(t, want, gotSig)
	assert.Contains(t, string(gotBody), "hot topic")
}

func TestWebhookRejectsErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	wh := NewWebhook(ts.URL, "")
	err := wh.Send(context.Background(), &Notification{Title: "t"})

	assert.Error(t, err)
}

func TestSlackSend(t *testing.T) {
	var body []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	s := NewSlack(ts.URL)
	err := s.Send(context.Background(), &Notification{Title: "hot topic", Body: "go post", Relevance: 2})

	require.NoError(t, err)
	assert.Contains(t, string(body), "hot topic")
}
