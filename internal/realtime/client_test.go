package realtime

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mavrin/citizen-report-portal/internal/reconcile"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func testPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, BaseDelay: 5 * time.Millisecond, MaxDelay: 20 * time.Millisecond}
}

func TestSubscribe_DeliversEventsInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/realtime/crimes", r.URL.Path)
		assert.Equal(t, "citizen-token", r.URL.Query().Get("token"))

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for i := 1; i <= 3; i++ {
			fmt.Fprintf(w, "data: {\"type\":\"report_update\",\"data\":{\"id\":\"R%d\"}}\n\n", i)
			flusher.Flush()
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, func() string { return "citizen-token" }, RetryPolicy{MaxRetries: 0}, testLogger())

	var events []reconcile.Event
	sub := client.Subscribe(context.Background(), "crimes", func(ev reconcile.Event) {
		events = append(events, ev)
	})
	<-sub.Done()

	require.Len(t, events, 3)
	for i, ev := range events {
		assert.Equal(t, "report_update", ev.Type)
		assert.Contains(t, string(ev.Data), fmt.Sprintf("R%d", i+1))
	}
}

func TestSubscribe_ReconnectsAfterDrop(t *testing.T) {
	var connects atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := connects.Add(1)
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprintf(w, "data: {\"type\":\"report_update\",\"data\":{\"id\":\"conn-%d\"}}\n\n", n)
		// Returning drops the stream, forcing the client to reconnect.
	}))
	defer srv.Close()

	client := NewClient(srv.URL, func() string { return "t" }, testPolicy(), testLogger())

	// Each connect delivers one event before dropping; a delivered event
	// resets the failure count, so the client keeps reconnecting until we
	// cancel it.
	received := make(chan reconcile.Event, 16)
	sub := client.Subscribe(context.Background(), "crimes", func(ev reconcile.Event) {
		received <- ev
	})

	var events []reconcile.Event
	for len(events) < 3 {
		select {
		case ev := <-received:
			events = append(events, ev)
		case <-time.After(2 * time.Second):
			t.Fatal("client stopped reconnecting")
		}
	}
	sub.Cancel()

	assert.GreaterOrEqual(t, connects.Load(), int32(3))
	assert.Contains(t, string(events[0].Data), "conn-1")
	assert.Contains(t, string(events[1].Data), "conn-2")
}

func TestSubscribe_CancelTearsDownStream(t *testing.T) {
	streaming := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"type\":\"report_update\",\"data\":{\"id\":\"R1\"}}\n\n")
		w.(http.Flusher).Flush()
		close(streaming)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(srv.URL, func() string { return "t" }, testPolicy(), testLogger())

	sub := client.Subscribe(context.Background(), "crimes", func(reconcile.Event) {})
	<-streaming

	done := make(chan struct{})
	go func() {
		sub.Cancel()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Cancel did not tear the stream down")
	}
}

func TestSubscribe_GivesUpAfterMaxRetries(t *testing.T) {
	var connects atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		connects.Add(1)
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, func() string { return "t" }, testPolicy(), testLogger())

	sub := client.Subscribe(context.Background(), "crimes", func(reconcile.Event) {
		t.Fatal("no event should be delivered")
	})

	select {
	case <-sub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("subscription did not give up")
	}
	// Initial attempt plus MaxRetries reconnects.
	assert.Equal(t, int32(4), connects.Load())
}

func TestSubscribe_SkipsUndecodableFrames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: not json\n\n")
		fmt.Fprint(w, ": keepalive comment\n\n")
		fmt.Fprint(w, "data: {\"type\":\"report_deleted\",\"data\":{\"id\":\"R1\"}}\n\n")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, func() string { return "t" }, RetryPolicy{MaxRetries: 0}, testLogger())

	var events []reconcile.Event
	sub := client.Subscribe(context.Background(), "crimes", func(ev reconcile.Event) {
		events = append(events, ev)
	})
	<-sub.Done()

	require.Len(t, events, 1)
	assert.Equal(t, "report_deleted", events[0].Type)
}

func TestRetryPolicy_DelayGrowsAndStaysCapped(t *testing.T) {
	p := RetryPolicy{MaxRetries: 10, BaseDelay: 10 * time.Millisecond, MaxDelay: 80 * time.Millisecond}

	for attempt := 0; attempt < 10; attempt++ {
		d := p.Delay(attempt)
		assert.Greater(t, d, time.Duration(0))
		assert.LessOrEqual(t, d, p.MaxDelay)
	}
}
