package vdom

import "testing"

func TestFindByID(t *testing.T) {
	inner := Func(func() *VNode {
		return Section(ID("button"), H2(Text("Button")))
	})
	root := Div(ID("root"), Div(inner), P(ID("after")))

	if got := FindByID(root, "button"); got == nil || got.Tag != "section" {
		t.Fatalf("FindByID(button) = %+v", got)
	}
	if got := FindByID(root, "Button"); got != nil {
		t.Error("lookup must be case-sensitive")
	}

	ids := IDs(root)
	want := []string{"root", "button", "after"}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestTextContentAndClasses(t *testing.T) {
	root := Div(Class("card muted"), H3(Text("Hello")), Raw("<b>world</b>"))
	if got := TextContent(root); got != "Hello<b>world</b>" {
		t.Errorf("TextContent() = %q", got)
	}
	if !HasClass(root, "muted") || HasClass(root, "mute") {
		t.Error("HasClass misreports")
	}

	found := FindAll(root, func(n *VNode) bool { return n.Kind == KindText })
	if len(found) != 1 {
		t.Errorf("FindAll(text) = %d, want 1", len(found))
	}
}
