// Package realtime consumes the records API's server-push streams and hands
// decoded events to the reconciler in arrival order.
package realtime

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mavrin/citizen-report-portal/internal/reconcile"
	"github.com/sirupsen/logrus"
)

// RetryPolicy controls reconnection after a dropped stream: exponential
// backoff starting at BaseDelay, capped at MaxDelay, with jitter. After
// MaxRetries consecutive failed connects the subscription gives up.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// Delay returns the jittered backoff before the given attempt (0-based).
func (p RetryPolicy) Delay(attempt int) time.Duration {
	d := p.BaseDelay << attempt
	if d > p.MaxDelay || d <= 0 {
		d = p.MaxDelay
	}
	// Jitter within [d/2, d).
	half := int64(d / 2)
	if half <= 0 {
		return d
	}
	return time.Duration(half + rand.Int63n(half))
}

// TokenSource supplies the bearer token at subscription time. The records
// API expects it as a query parameter, not a header.
type TokenSource func() string

// Client opens subscriptions against the records API's realtime endpoints.
type Client struct {
	baseURL    string
	token      TokenSource
	httpClient *http.Client
	policy     RetryPolicy
	logger     *logrus.Logger
}

// NewClient returns a realtime client. The underlying http.Client carries no
// timeout: streams stay open indefinitely and are torn down via context.
func NewClient(baseURL string, token TokenSource, policy RetryPolicy, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
		policy:     policy,
		logger:     logger,
	}
}

// Subscription is a handle on one open event stream.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel tears the stream down and waits for the reader goroutine to exit.
// Events pushed while no stream is open are lost; there is no resume.
func (s *Subscription) Cancel() {
	s.cancel()
	<-s.done
}

// Done is closed when the reader goroutine has exited, whether by Cancel or
// by exhausting the retry policy.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Subscribe opens the stream for a resource ("crimes" or "incidents") and
// delivers each decoded event to onEvent on a single goroutine, in arrival
// order. Connection errors are retried per the client's policy.
func (c *Client) Subscribe(ctx context.Context, resource string, onEvent func(reconcile.Event)) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}

	log := c.logger.WithField("resource", resource)
	go func() {
		defer close(sub.done)
		failures := 0
		for {
			if ctx.Err() != nil {
				return
			}
			delivered, err := c.streamOnce(ctx, resource, onEvent)
			if ctx.Err() != nil {
				log.Info("Realtime subscription closed")
				return
			}
			if delivered {
				failures = 0
			}
			failures++
			if failures > c.policy.MaxRetries {
				log.WithError(err).Errorf("Giving up on realtime stream after %d attempts", failures)
				return
			}
			delay := c.policy.Delay(failures - 1)
			log.WithError(err).Warnf("Realtime stream dropped, reconnecting in %v", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return
			}
		}
	}()
	return sub
}

// streamOnce opens one connection and pumps events until the stream ends or
// the context is cancelled. It reports whether at least one event was
// delivered so the caller can reset its consecutive-failure count.
func (c *Client) streamOnce(ctx context.Context, resource string, onEvent func(reconcile.Event)) (bool, error) {
	endpoint := fmt.Sprintf("%s/realtime/%s?token=%s", c.baseURL, resource, url.QueryEscape(c.token()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create stream request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to open realtime stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("realtime stream returned status %d", resp.StatusCode)
	}

	log := c.logger.WithField("resource", resource)
	log.Info("Realtime stream connected")

	delivered := false
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var data strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			// Blank line terminates one SSE frame.
			if data.Len() > 0 {
				delivered = c.dispatch(data.String(), onEvent, log) || delivered
				data.Reset()
			}
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		default:
			// event:/id:/retry: fields and comments are not used by the
			// records API; the type discriminant lives in the payload.
		}
	}
	if data.Len() > 0 {
		delivered = c.dispatch(data.String(), onEvent, log) || delivered
	}
	if err := scanner.Err(); err != nil {
		return delivered, fmt.Errorf("realtime stream read failed: %w", err)
	}
	return delivered, fmt.Errorf("realtime stream ended")
}

func (c *Client) dispatch(payload string, onEvent func(reconcile.Event), log *logrus.Entry) bool {
	var ev reconcile.Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		log.WithError(err).Warn("Skipping undecodable realtime message")
		return false
	}
	onEvent(ev)
	return true
}
