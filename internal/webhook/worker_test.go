package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/parade_tracking_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewWebhookWorker(nil, logger, cfg)
}

func testPayload(t *testing.T) (BoatEvent, string) {
	t.Helper()
	event := BoatEvent{
		Type:     EventStatusChanged,
		BoatID:   "boat-1",
		Status:   "emergency",
		Latitude: 52.37,
	}
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(raw)
}

func TestProcessEvent_DeliversSignedPayload(t *testing.T) {
	event, raw := testPayload(t)

	var (
		mu                    sync.Mutex
		gotSignature, gotBody string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotBody = string(body)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	ok := w.processEvent(context.Background(), event, raw)

	require.True(t, ok)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, raw, gotBody)
	assert.Equal(t, generateHMACSHA256(raw, "s3cret"), gotSignature)
}

func TestProcessEvent_RetriesOnServerError(t *testing.T) {
	event, raw := testPayload(t)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.True(t, w.processEvent(context.Background(), event, raw))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestProcessEvent_GivesUpAfterMaxRetries(t *testing.T) {
	event, raw := testPayload(t)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.False(t, w.processEvent(context.Background(), event, raw))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestProcessEvent_NoURLConfigured(t *testing.T) {
	event, raw := testPayload(t)
	w := newTestWorker(&config.Config{WebhookTimeout: time.Second})

	assert.False(t, w.processEvent(context.Background(), event, raw))
}

func TestProcessEvent_InvalidURLFailsFast(t *testing.T) {
	event, raw := testPayload(t)
	w := newTestWorker(&config.Config{
		WebhookURL:        "http://bad host/\x7f",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  time.Hour,
	})

	done := make(chan bool, 1)
	go func() { done <- w.processEvent(context.Background(), event, raw) }()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("invalid webhook URL must not be retried")
	}
}

func TestGenerateHMACSHA256_Deterministic(t *testing.T) {
	a := generateHMACSHA256("payload", "key")
	b := generateHMACSHA256("payload", "key")
	c := generateHMACSHA256("payload", "other")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
