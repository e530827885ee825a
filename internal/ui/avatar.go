package ui

import (
	"strings"
	"unicode"

	"github.com/vango-dev/gallery/pkg/vdom"
)

// Avatar renders a round image with a text fallback. An empty src
// renders only the fallback.
func Avatar(src, name string, class ...string) *vdom.VNode {
	var content *vdom.VNode
	if src != "" {
		content = vdom.Img(
			slot("avatar-image"),
			vdom.Src(src),
			vdom.Alt(name),
			vdom.Class("aspect-square h-full w-full"),
		)
	} else {
		content = vdom.Span(
			slot("avatar-fallback"),
			vdom.AriaLabel(name),
			vdom.Class("flex h-full w-full items-center justify-center rounded-full bg-muted text-sm"),
			Initials(name),
		)
	}
	return vdom.Span(
		slot("avatar"),
		vdom.Class("relative flex h-10 w-10 shrink-0 overflow-hidden rounded-full", CN(class...)),
		content,
	)
}

// Initials returns the upper-cased first letters of up to two words.
func Initials(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}
