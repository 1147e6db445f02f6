package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thedemodev/superdesk-publisher/internal/domain"
)

type fakeSignals struct {
	ch     chan domain.RefreshSignal
	closed chan struct{}
}

func newFakeSignals() *fakeSignals {
	return &fakeSignals{
		ch:     make(chan domain.RefreshSignal, 4),
		closed: make(chan struct{}),
	}
}

func (f *fakeSignals) Subscribe() (<-chan domain.RefreshSignal, func()) {
	return f.ch, func() { close(f.closed) }
}

func openStream(t *testing.T, source SignalSource, heartbeat time.Duration) (*bufio.Reader, context.CancelFunc) {
	t.Helper()
	router := gin.New()
	router.GET(EventsPath, NewEventsHandler(source, heartbeat).Stream)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+EventsPath, nil)
	require.NoError(t, err)

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))
	return bufio.NewReader(resp.Body), cancel
}

// readUntil returns the first line with the given prefix.
func readUntil(t *testing.T, r *bufio.Reader, prefix string) string {
	t.Helper()
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if strings.HasPrefix(line, prefix) {
			return line
		}
	}
}

func TestEventsStream_DeliversSignals(t *testing.T) {
	source := newFakeSignals()
	source.ch <- domain.RefreshSignal{
		Reason:     domain.RefreshReasonPublished,
		ArticleID:  42,
		ReceivedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	r, cancel := openStream(t, source, time.Minute)
	defer cancel()

	event := readUntil(t, r, "event:")
	assert.Equal(t, domain.RefreshReasonPublished, strings.TrimSpace(strings.TrimPrefix(event, "event:")))

	data := readUntil(t, r, "data:")
	var signal domain.RefreshSignal
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(strings.TrimPrefix(data, "data:"))), &signal))
	assert.Equal(t, int64(42), signal.ArticleID)
	assert.Equal(t, domain.RefreshReasonPublished, signal.Reason)
}

func TestEventsStream_Heartbeat(t *testing.T) {
	r, cancel := openStream(t, newFakeSignals(), 10*time.Millisecond)
	defer cancel()

	assert.Equal(t, ": ping", readUntil(t, r, ":"))
}

func TestEventsStream_UnsubscribesOnDisconnect(t *testing.T) {
	source := newFakeSignals()
	_, cancel := openStream(t, source, time.Minute)

	cancel()

	select {
	case <-source.closed:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not released after the client disconnected")
	}
}

func TestEventsStream_EndsWhenSourceCloses(t *testing.T) {
	source := newFakeSignals()
	r, cancel := openStream(t, source, time.Minute)
	defer cancel()

	close(source.ch)

	_, err := r.ReadString('\n')
	for err == nil {
		_, err = r.ReadString('\n')
	}
	select {
	case <-source.closed:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not released")
	}
}
