package query

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/gallery/internal/catalog"
	"github.com/vango-dev/gallery/internal/metrics"
)

type stubProvider struct {
	seed *catalog.Seed
	gate chan struct{}
	err  error

	mu    sync.Mutex
	calls map[string]int
}

func newStub() *stubProvider {
	return &stubProvider{seed: catalog.DefaultSeed(), calls: make(map[string]int)}
}

func (s *stubProvider) record(ctx context.Context, op string) error {
	s.mu.Lock()
	s.calls[op]++
	gate := s.gate
	s.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.err
}

func (s *stubProvider) count(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *stubProvider) Categories(ctx context.Context) ([]catalog.Category, error) {
	if err := s.record(ctx, "categories"); err != nil {
		return nil, err
	}
	return s.seed.Categories(ctx)
}

func (s *stubProvider) ComponentsByCategory(ctx context.Context, id string) ([]catalog.Component, error) {
	if err := s.record(ctx, "components"); err != nil {
		return nil, err
	}
	return s.seed.ComponentsByCategory(ctx, id)
}

func (s *stubProvider) ComponentBySlug(ctx context.Context, slug string) (catalog.Component, error) {
	if err := s.record(ctx, "component"); err != nil {
		return catalog.Component{}, err
	}
	return s.seed.ComponentBySlug(ctx, slug)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(p catalog.Provider, opts ...Option) *Client {
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	return New(p, NewMemoryStore(time.Minute, 0), opts...)
}

func TestClientCachesResults(t *testing.T) {
	ctx := context.Background()
	p := newStub()
	m := metrics.New(metrics.WithRegistry(prometheus.NewRegistry()))
	c := newTestClient(p, WithMetrics(m))
	defer c.Close()

	for i := 0; i < 3; i++ {
		cats, err := c.Categories(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(cats) == 0 {
			t.Fatal("no categories")
		}
	}
	if n := p.count("categories"); n != 1 {
		t.Errorf("provider calls = %d, want 1", n)
	}

	b1, _ := c.ComponentBySlug(ctx, "button")
	b2, _ := c.ComponentBySlug(ctx, "button")
	if b1.Slug != "button" || b2.Slug != "button" {
		t.Errorf("got %q and %q", b1.Slug, b2.Slug)
	}
	if n := p.count("component"); n != 1 {
		t.Errorf("component calls = %d, want 1", n)
	}
}

func TestClientDeduplicatesConcurrentFetches(t *testing.T) {
	p := newStub()
	p.gate = make(chan struct{})
	c := newTestClient(p)
	defer c.Close()

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Categories(context.Background())
			errs <- err
		}()
	}

	deadline := time.Now().Add(time.Second)
	for p.count("categories") == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(10 * time.Millisecond)
	close(p.gate)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("fetch error: %v", err)
		}
	}
	if got := p.count("categories"); got != 1 {
		t.Errorf("provider calls = %d, want 1", got)
	}
}

func TestClientAbandonedFetchStillPopulates(t *testing.T) {
	p := newStub()
	p.gate = make(chan struct{})
	c := newTestClient(p)
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.ComponentBySlug(ctx, "dialog")
		done <- err
	}()

	for p.count("component") == 0 {
		time.Sleep(time.Millisecond)
	}
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}

	close(p.gate)

	deadline := time.Now().Add(time.Second)
	for {
		_, ok, _ := c.store.Get(context.Background(), ComponentKey("dialog"))
		if ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("abandoned fetch did not populate the cache")
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := c.ComponentBySlug(context.Background(), "dialog"); err != nil {
		t.Fatal(err)
	}
	if n := p.count("component"); n != 1 {
		t.Errorf("provider calls = %d, want 1", n)
	}
}

func TestClientDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	p := newStub()
	c := newTestClient(p)
	defer c.Close()

	if _, err := c.ComponentBySlug(ctx, "nope"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	c.ComponentBySlug(ctx, "nope")
	if n := p.count("component"); n != 2 {
		t.Errorf("not-found should not be cached, calls = %d", n)
	}

	p.err = errors.New("backend down")
	if _, err := c.Categories(ctx); err == nil {
		t.Fatal("expected provider error")
	}
	p.err = nil
	if _, err := c.Categories(ctx); err != nil {
		t.Fatalf("recovery failed: %v", err)
	}
}

func TestClientInvalidate(t *testing.T) {
	ctx := context.Background()
	p := newStub()
	c := newTestClient(p)
	defer c.Close()

	c.Categories(ctx)
	c.ComponentBySlug(ctx, "button")

	if err := c.Invalidate(ctx, KeyCategories); err != nil {
		t.Fatal(err)
	}
	c.Categories(ctx)
	c.ComponentBySlug(ctx, "button")
	if p.count("categories") != 2 || p.count("component") != 1 {
		t.Errorf("calls = %v", p.calls)
	}

	if err := c.InvalidateAll(ctx); err != nil {
		t.Fatal(err)
	}
	c.ComponentBySlug(ctx, "button")
	if p.count("component") != 2 {
		t.Errorf("InvalidateAll should drop components, calls = %v", p.calls)
	}
}

func TestClientInvalidateDuringFetchSkipsWrite(t *testing.T) {
	p := newStub()
	p.gate = make(chan struct{})
	c := newTestClient(p)
	defer c.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Categories(context.Background())
	}()
	for p.count("categories") == 0 {
		time.Sleep(time.Millisecond)
	}
	c.Invalidate(context.Background(), KeyCategories)
	close(p.gate)
	<-done

	if _, ok, _ := c.store.Get(context.Background(), KeyCategories); ok {
		t.Error("a fetch overtaken by invalidation must not write a stale entry")
	}
}

func TestClientClose(t *testing.T) {
	p := newStub()
	p.gate = make(chan struct{})
	c := newTestClient(p)

	ctx, cancel := context.WithCancel(context.Background())
	go c.Categories(ctx)
	for p.count("categories") == 0 {
		time.Sleep(time.Millisecond)
	}
	cancel()

	closed := make(chan struct{})
	go func() {
		c.Close()
		close(closed)
	}()

	select {
	case <-closed:
		t.Fatal("Close returned before the in-flight fetch finished")
	case <-time.After(20 * time.Millisecond):
	}
	close(p.gate)
	<-closed

	if _, err := c.Categories(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("err = %v, want ErrClosed", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}
