package registry

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/gallery/internal/catalog"
	"github.com/vango-dev/gallery/pkg/vdom"
)

func fixed(tag string) vdom.Component {
	return vdom.Func(func() *vdom.VNode { return vdom.El(tag) })
}

func TestLookup(t *testing.T) {
	reg := New(map[string]vdom.Component{
		"button": fixed("button"),
		"dialog": fixed("dialog"),
	})

	tests := []struct {
		slug string
		want bool
	}{
		{"button", true},
		{"dialog", true},
		{"Button", false},
		{" button", false},
		{"button ", false},
		{"btn", false},
		{"", false},
		{"date-picker", false},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			comp, ok := reg.Lookup(tt.slug)
			if ok != tt.want {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.slug, ok, tt.want)
			}
			if ok && comp.Render().Tag != tt.slug {
				t.Errorf("Lookup(%q) rendered %q", tt.slug, comp.Render().Tag)
			}
			if !ok && comp != nil {
				t.Errorf("Lookup(%q) returned a renderer on miss", tt.slug)
			}
		})
	}
}

func TestNewCopiesEntries(t *testing.T) {
	entries := map[string]vdom.Component{"button": fixed("button"), "nil": nil}
	reg := New(entries)
	entries["dialog"] = fixed("dialog")
	delete(entries, "button")

	if reg.Has("dialog") || !reg.Has("button") {
		t.Error("registry must not observe changes to the source map")
	}
	if reg.Has("nil") {
		t.Error("nil renderers must be dropped")
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestResolveIsOrderedAndDeterministic(t *testing.T) {
	reg := New(map[string]vdom.Component{"button": fixed("button"), "toggle": fixed("button")})
	components := []catalog.Component{
		{Slug: "toggle"},
		{Slug: "date-picker"},
		{Slug: "button"},
		{Slug: "toggle"},
	}

	first := reg.Resolve(components)
	var got []bool
	for i, res := range first {
		if res.Component.Slug != components[i].Slug {
			t.Errorf("Resolve()[%d] = %q, want %q", i, res.Component.Slug, components[i].Slug)
		}
		got = append(got, res.Hit())
	}
	if diff := cmp.Diff([]bool{true, false, true, true}, got); diff != "" {
		t.Errorf("hits mismatch (-want +got):\n%s", diff)
	}

	for range 10 {
		again := reg.Resolve(components)
		for i := range again {
			if again[i].Hit() != first[i].Hit() {
				t.Fatalf("Resolve is not deterministic at %d", i)
			}
		}
	}

	if out := reg.Resolve(nil); len(out) != 0 {
		t.Errorf("Resolve(nil) = %v", out)
	}
}

func TestMissing(t *testing.T) {
	reg := New(map[string]vdom.Component{"button": fixed("button")})
	got := reg.Missing([]catalog.Component{
		{Slug: "widget-42"},
		{Slug: "button"},
		{Slug: "date-picker"},
		{Slug: "widget-42"},
	})
	if diff := cmp.Diff([]string{"widget-42", "date-picker"}, got); diff != "" {
		t.Errorf("Missing() mismatch (-want +got):\n%s", diff)
	}
}

func TestSlugsAndDigest(t *testing.T) {
	a := New(map[string]vdom.Component{"tabs": fixed("div"), "alert": fixed("div"), "button": fixed("button")})
	b := New(map[string]vdom.Component{"button": fixed("a"), "tabs": fixed("a"), "alert": fixed("a")})

	slugs := a.Slugs()
	if diff := cmp.Diff([]string{"alert", "button", "tabs"}, slugs); diff != "" {
		t.Errorf("Slugs() mismatch (-want +got):\n%s", diff)
	}
	slugs[0] = "mutated"
	if a.Slugs()[0] != "alert" {
		t.Error("Slugs() must return a copy")
	}

	if a.Digest() != b.Digest() {
		t.Error("digest should depend only on the slug set")
	}
	if a.Digest() == New(map[string]vdom.Component{"alert": fixed("div")}).Digest() {
		t.Error("different slug sets should have different digests")
	}
	if len(a.Digest()) != 16 {
		t.Errorf("Digest() = %q", a.Digest())
	}
}

func TestNilRegistry(t *testing.T) {
	var reg *Registry
	if _, ok := reg.Lookup("button"); ok {
		t.Error("nil registry should miss")
	}
	if reg.Len() != 0 || reg.Slugs() != nil || reg.Digest() != "" {
		t.Error("nil registry should be empty")
	}
}

func TestConcurrentReads(t *testing.T) {
	reg := New(map[string]vdom.Component{"button": fixed("button")})
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				reg.Lookup("button")
				reg.Resolve([]catalog.Component{{Slug: "button"}, {Slug: "x"}})
			}
		}()
	}
	wg.Wait()
}
