package query

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/gallery/internal/metrics"
)

// Invalidator drops cache entries. *Client implements it.
type Invalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
	InvalidateAll(ctx context.Context) error
}

// ChangeEvent is one row change published by the provider's change feed.
type ChangeEvent struct {
	Table     string         `json:"table"`
	Type      string         `json:"type"`
	Record    map[string]any `json:"record,omitempty"`
	OldRecord map[string]any `json:"old_record,omitempty"`
}

// Keys returns the cache keys affected by e. A nil result with all set
// means every entry is affected.
func (e ChangeEvent) Keys() (keys []string, all bool) {
	switch e.Table {
	case "categories":
		keys = append(keys, KeyCategories)
		for _, r := range []map[string]any{e.Record, e.OldRecord} {
			if id, ok := r["id"].(string); ok && id != "" {
				keys = append(keys, CategoryKey(id))
			}
		}
		return dedupe(keys), false
	case "components", "variants", "documentation":
		keys = append(keys, KeyCategories)
		for _, r := range []map[string]any{e.Record, e.OldRecord} {
			if slug, ok := r["slug"].(string); ok && slug != "" {
				keys = append(keys, ComponentKey(slug))
			}
			if id, ok := r["category_id"].(string); ok && id != "" {
				keys = append(keys, CategoryKey(id))
			}
		}
		if e.Table != "components" || len(keys) == 1 {
			// Relation rows do not carry the component slug.
			return nil, true
		}
		return dedupe(keys), false
	}
	return nil, true
}

func dedupe(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := keys[:0]
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// Subscriber listens to a websocket change feed and invalidates the
// affected cache keys. It reconnects with exponential backoff and drops
// the whole cache after each reconnect, since events may have been missed.
type Subscriber struct {
	url        string
	header     http.Header
	dialer     *websocket.Dialer
	target     Invalidator
	backoff    time.Duration
	maxBackoff time.Duration
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// SubscriberOption configures a Subscriber.
type SubscriberOption func(*Subscriber)

// WithHeader sets request headers for the websocket handshake.
func WithHeader(h http.Header) SubscriberOption {
	return func(s *Subscriber) {
		s.header = h
	}
}

// WithBackoff sets the initial and maximum reconnect delay.
// Default: 1s and 30s.
func WithBackoff(initial, max time.Duration) SubscriberOption {
	return func(s *Subscriber) {
		s.backoff = initial
		s.maxBackoff = max
	}
}

// WithSubscriberLogger sets the logger.
func WithSubscriberLogger(l *slog.Logger) SubscriberOption {
	return func(s *Subscriber) {
		s.logger = l
	}
}

// WithSubscriberMetrics records received events.
func WithSubscriberMetrics(m *metrics.Metrics) SubscriberOption {
	return func(s *Subscriber) {
		s.metrics = m
	}
}

// NewSubscriber creates a subscriber for the feed at url.
func NewSubscriber(url string, target Invalidator, opts ...SubscriberOption) *Subscriber {
	s := &Subscriber{
		url:        url,
		dialer:     websocket.DefaultDialer,
		target:     target,
		backoff:    time.Second,
		maxBackoff: 30 * time.Second,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "realtime")
	return s
}

// Run consumes the feed until ctx is done. It returns nil on cancellation.
func (s *Subscriber) Run(ctx context.Context) error {
	delay := s.backoff
	first := true
	for {
		err := s.session(ctx, !first)
		if ctx.Err() != nil {
			return nil
		}
		if errors.Is(err, errFeedClosed) {
			delay = s.backoff
		}
		first = false
		s.logger.Warn("change feed disconnected", "error", err, "retry_in", delay)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
		delay *= 2
		if delay > s.maxBackoff {
			delay = s.maxBackoff
		}
	}
}

// errFeedClosed marks a session that connected and was later closed.
var errFeedClosed = errors.New("change feed closed")

// session runs one connection. It returns errFeedClosed after a connection
// that was established, or the dial error otherwise.
func (s *Subscriber) session(ctx context.Context, reconnect bool) error {
	conn, _, err := s.dialer.DialContext(ctx, s.url, s.header)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			conn.Close()
		case <-done:
		}
	}()
	defer func() {
		close(done)
		<-stopped
		conn.Close()
	}()

	s.logger.Info("change feed connected", "url", s.url)
	if reconnect {
		if err := s.target.InvalidateAll(ctx); err != nil {
			s.logger.Warn("invalidate after reconnect failed", "error", err)
		}
	}

	for {
		var ev ChangeEvent
		if err := conn.ReadJSON(&ev); err != nil {
			var (
				syntax   *json.SyntaxError
				mismatch *json.UnmarshalTypeError
			)
			if errors.As(err, &syntax) || errors.As(err, &mismatch) {
				s.logger.Warn("malformed change event", "error", err)
				continue
			}
			s.logger.Debug("read ended", "error", err)
			return errFeedClosed
		}
		s.handle(ctx, ev)
	}
}

func (s *Subscriber) handle(ctx context.Context, ev ChangeEvent) {
	s.metrics.RealtimeEvent(ev.Table)
	keys, all := ev.Keys()
	var err error
	if all {
		err = s.target.InvalidateAll(ctx)
	} else {
		err = s.target.Invalidate(ctx, keys...)
	}
	if err != nil {
		s.logger.Warn("invalidate failed", "table", ev.Table, "error", err)
		return
	}
	s.logger.Debug("change applied", "table", ev.Table, "type", ev.Type, "keys", keys, "all", all)
}
