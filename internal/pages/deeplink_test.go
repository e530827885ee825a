package pages

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// fakeClock runs callbacks when Advance passes their deadline.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.f()
	}
}

func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func categoryScroller(t *testing.T, slug string) *TreeScroller {
	t.Helper()
	page, err := seedResolver().Category(context.Background(), slug)
	if err != nil {
		t.Fatal(err)
	}
	return &TreeScroller{Root: page.Render()}
}

func TestScrollOnMountExactlyOnce(t *testing.T) {
	clock := &fakeClock{}
	scroller := categoryScroller(t, "actions")
	s := &ScrollOnMount{Scroller: scroller, Clock: clock}

	s.Mount("#button", false)
	if clock.Pending() != 0 {
		t.Fatal("must not schedule before data loads")
	}

	s.Mount("#button", true)
	s.Mount("#button", true)
	if clock.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", clock.Pending())
	}

	clock.Advance(ScrollDelay - time.Millisecond)
	if len(scroller.Scrolled()) != 0 {
		t.Fatal("scrolled before the delay elapsed")
	}
	clock.Advance(time.Millisecond)
	if diff := cmp.Diff([]string{"button"}, scroller.Scrolled()); diff != "" {
		t.Fatalf("scrolled mismatch (-want +got):\n%s", diff)
	}

	s.Mount("#button", true)
	clock.Advance(time.Second)
	if len(scroller.Scrolled()) != 1 {
		t.Errorf("scrolled %d times, want exactly once", len(scroller.Scrolled()))
	}
}

func TestScrollOnMountNoRetry(t *testing.T) {
	clock := &fakeClock{}
	scroller := categoryScroller(t, "actions")
	s := &ScrollOnMount{Scroller: scroller, Clock: clock}

	s.Mount("missing", true)
	clock.Advance(ScrollDelay)
	if !s.Fired() || len(scroller.Scrolled()) != 0 {
		t.Fatalf("fired = %v, scrolled = %v", s.Fired(), scroller.Scrolled())
	}

	s.Mount("missing", true)
	if clock.Pending() != 0 {
		t.Error("a missing element must not be retried")
	}
}

func TestScrollOnMountIgnoresEmptyFragment(t *testing.T) {
	clock := &fakeClock{}
	s := &ScrollOnMount{Scroller: categoryScroller(t, "actions"), Clock: clock}
	s.Mount("", true)
	s.Mount("#", true)
	if clock.Pending() != 0 {
		t.Error("empty fragment must not schedule")
	}
}

func TestScrollOnMountUnmount(t *testing.T) {
	clock := &fakeClock{}
	scroller := categoryScroller(t, "actions")
	s := &ScrollOnMount{Scroller: scroller, Clock: clock}

	s.Mount("toggle", true)
	s.Unmount()
	clock.Advance(time.Second)
	if s.Fired() || len(scroller.Scrolled()) != 0 {
		t.Fatal("unmount should cancel the pending scroll")
	}

	s.Mount("toggle", true)
	clock.Advance(ScrollDelay)
	if diff := cmp.Diff([]string{"toggle"}, scroller.Scrolled()); diff != "" {
		t.Errorf("scrolled mismatch (-want +got):\n%s", diff)
	}
}

func TestScrollOnMountUnmountAfterExpiry(t *testing.T) {
	clock := &fakeClock{}
	scroller := categoryScroller(t, "actions")
	s := &ScrollOnMount{Scroller: scroller, Clock: clock}

	s.Mount("toggle", true)
	// The timer has expired but its callback has not run yet, so Stop
	// reports false.
	expired := clock.timers[0]
	expired.fired = true
	s.Unmount()
	expired.f()

	if s.Fired() || len(scroller.Scrolled()) != 0 {
		t.Fatal("callback of an unmounted scroll must not run")
	}

	s.Mount("toggle", true)
	clock.Advance(ScrollDelay)
	if diff := cmp.Diff([]string{"toggle"}, scroller.Scrolled()); diff != "" {
		t.Errorf("scrolled mismatch (-want +got):\n%s", diff)
	}
}

func TestScrollOnMountSystemClock(t *testing.T) {
	scroller := categoryScroller(t, "actions")
	s := &ScrollOnMount{Scroller: scroller}
	s.Mount("#button", true)

	deadline := time.Now().Add(2 * time.Second)
	for !s.Fired() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if diff := cmp.Diff([]string{"button"}, scroller.Scrolled()); diff != "" {
		t.Errorf("scrolled mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderedScrollHook(t *testing.T) {
	page, err := seedResolver().Category(context.Background(), "actions")
	if err != nil {
		t.Fatal(err)
	}
	node := page.Render()
	if node.Props["data-hook"] != "ScrollIntoView" {
		t.Fatalf("data-hook = %v", node.Props["data-hook"])
	}
	var cfg map[string]int
	if err := json.Unmarshal([]byte(node.Props["data-hook-config"].(string)), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg["delay"] != int(ScrollDelay.Milliseconds()) {
		t.Errorf("delay = %d", cfg["delay"])
	}
}
