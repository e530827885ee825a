package pages

import (
	"strings"
	"sync"
	"time"

	"github.com/vango-dev/gallery/pkg/vdom"
)

// ScrollDelay is how long after data load a deep-linked element is
// scrolled into view.
const ScrollDelay = 100 * time.Millisecond

// ScrollHook attaches the client-side deep-link behavior to a page root.
func ScrollHook() []vdom.Attr {
	return vdom.Hook("ScrollIntoView", map[string]any{"delay": ScrollDelay.Milliseconds()})
}

// Scroller is the view the deep link acts on.
type Scroller interface {
	// Exists reports whether an element with id is present.
	Exists(id string) bool
	// ScrollIntoView scrolls the element with id into view and focuses it.
	ScrollIntoView(id string)
}

// Timer is a pending Clock callback.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock is the wall clock.
type SystemClock struct{}

// AfterFunc implements Clock.
func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ScrollOnMount scrolls a deep-linked element into view once a page's
// data has loaded. It fires at most once per instance: after the first
// attempt, whether or not the element existed, further Mount calls do
// nothing. A missing element is not retried.
type ScrollOnMount struct {
	Scroller Scroller
	Clock    Clock

	mu      sync.Mutex
	pending Timer
	gen     uint64 // bumped by Unmount; stale callbacks compare against it
	fired   bool
}

// Mount schedules the scroll for fragment, with or without its leading
// "#". It does nothing until loaded is true or when fragment is empty.
func (s *ScrollOnMount) Mount(fragment string, loaded bool) {
	id := strings.TrimPrefix(fragment, "#")
	if id == "" || !loaded {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fired || s.pending != nil {
		return
	}
	clock := s.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	gen := s.gen
	s.pending = clock.AfterFunc(ScrollDelay, func() {
		s.mu.Lock()
		if s.fired || s.gen != gen {
			s.mu.Unlock()
			return
		}
		s.fired = true
		s.pending = nil
		s.mu.Unlock()

		if s.Scroller.Exists(id) {
			s.Scroller.ScrollIntoView(id)
		}
	})
}

// Unmount cancels a scroll that has not run yet, including one whose
// timer has expired but whose callback has not started. A later Mount may
// schedule it again.
func (s *ScrollOnMount) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// Fired reports whether the scroll attempt has run.
func (s *ScrollOnMount) Fired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fired
}

// TreeScroller resolves ids against a rendered vdom tree and records the
// scroll calls. It backs server-side checks of deep links.
type TreeScroller struct {
	Root *vdom.VNode

	mu       sync.Mutex
	scrolled []string
}

// Exists implements Scroller.
func (t *TreeScroller) Exists(id string) bool {
	return vdom.FindByID(t.Root, id) != nil
}

// ScrollIntoView implements Scroller.
func (t *TreeScroller) ScrollIntoView(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scrolled = append(t.scrolled, id)
}

// Scrolled returns the ids scrolled so far, in call order.
func (t *TreeScroller) Scrolled() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.scrolled...)
}
