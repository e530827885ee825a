package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFuncComponent(t *testing.T) {
	calls := 0
	comp := Func(func() *VNode {
		calls++
		return Div(Text("hi"))
	})

	node := comp.Render()
	if node == nil || node.Tag != "div" {
		t.Fatalf("Render() = %+v, want div", node)
	}
	if calls != 1 {
		t.Errorf("render called %d times, want 1", calls)
	}

	var nilComp *FuncComponent
	if nilComp.Render() != nil {
		t.Error("nil FuncComponent should render nil")
	}
}

func TestCreateElement(t *testing.T) {
	node := Div(
		ID("main"),
		Class("a"),
		nil,
		Class("b", ""),
		"text",
		Span(Text("child")),
		[]*VNode{P(), nil, P()},
		Fragment(Em(), Strong()),
		Key("k1"),
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("unexpected node %+v", node)
	}
	if node.ID() != "main" {
		t.Errorf("ID() = %q, want main", node.ID())
	}
	if got := node.Props["class"]; got != "a b" {
		t.Errorf("class = %v, want %q", got, "a b")
	}
	if node.Key != "k1" {
		t.Errorf("Key = %q, want k1", node.Key)
	}
	if _, ok := node.Props["key"]; ok {
		t.Error("key must not be stored as a prop")
	}

	tags := []string{}
	for _, c := range node.Children {
		if c.Kind == KindText {
			tags = append(tags, "#text")
			continue
		}
		tags = append(tags, c.Tag)
	}
	want := []string{"#text", "span", "p", "p", "em", "strong"}
	if len(tags) != len(want) {
		t.Fatalf("children = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("child %d = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestEmptyAttrIgnored(t *testing.T) {
	node := Div(Attr{}, ClassIf(false, "hidden"))
	if len(node.Props) != 0 {
		t.Errorf("Props = %v, want empty", node.Props)
	}
	if !(Attr{}).IsEmpty() {
		t.Error("zero Attr should be empty")
	}
}

func TestVoidElements(t *testing.T) {
	for _, tag := range []string{"br", "hr", "img", "input", "meta", "link"} {
		if !IsVoidElement(tag) {
			t.Errorf("%s should be void", tag)
		}
	}
	for _, tag := range []string{"div", "span", "template", "script"} {
		if IsVoidElement(tag) {
			t.Errorf("%s should not be void", tag)
		}
	}
}

func TestHook(t *testing.T) {
	node := Div(Hook("ScrollIntoView", map[string]any{"delay": 100}))
	if got := node.Props["data-hook"]; got != "ScrollIntoView" {
		t.Errorf("data-hook = %v", got)
	}
	if got := node.Props["data-hook-config"]; got != `{"delay":100}` {
		t.Errorf("data-hook-config = %v", got)
	}

	bare := Div(Hook("Copy", nil))
	if _, ok := bare.Props["data-hook-config"]; ok {
		t.Error("empty config should not be rendered")
	}
}

func TestCN(t *testing.T) {
	if got := CN("a", " ", "", " b ", "c"); got != "a b c" {
		t.Errorf("CN() = %q", got)
	}
}

func TestRangeAndRepeat(t *testing.T) {
	nodes := Range([]string{"a", "", "c"}, func(s string, _ int) *VNode {
		if s == "" {
			return nil
		}
		return Li(Text(s))
	})
	if len(nodes) != 2 {
		t.Errorf("Range returned %d nodes, want 2", len(nodes))
	}

	if got := Repeat(3, func(i int) *VNode { return Div() }); len(got) != 3 {
		t.Errorf("Repeat(3) = %d nodes", len(got))
	}
	if got := Repeat(-1, func(i int) *VNode { return Div() }); got != nil {
		t.Errorf("Repeat(-1) = %v, want nil", got)
	}
}

func TestIfWhen(t *testing.T) {
	n := Div()
	if If(false, n) != nil || If(true, n) != n {
		t.Error("If misbehaves")
	}
	called := false
	When(false, func() *VNode { called = true; return n })
	if called {
		t.Error("When(false) must not evaluate")
	}
}
